package transcript

import (
	"strings"
	"testing"
	"time"
)

func TestChunked(t *testing.T) {
	chunks := Chunked("abcdefg", 3, 10)
	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3", len(chunks))
	}
	if chunks[0].Text != "abc" || chunks[2].Text != "g" {
		t.Fatalf("unexpected chunks %#v", chunks)
	}
	if chunks[1].DelayMs != 10 {
		t.Fatalf("DelayMs = %d, want 10", chunks[1].DelayMs)
	}
}

func TestChunked_RuneBoundaries(t *testing.T) {
	chunks := Chunked("日本語テキスト", 2, 0)
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Text)
	}
	if b.String() != "日本語テキスト" {
		t.Fatalf("chunking broke rune boundaries: %#v", chunks)
	}
}

func TestChunked_NoSizeKeepsWholeText(t *testing.T) {
	chunks := Chunked("hello", 0, 0)
	if len(chunks) != 1 || chunks[0].Text != "hello" {
		t.Fatalf("unexpected chunks %#v", chunks)
	}
}

func TestNewRecord_DerivesTitle(t *testing.T) {
	rec := NewRecord("", "\n## Release notes\nbody", 16, 0)
	if rec.Title != "Release notes" {
		t.Fatalf("Title = %q", rec.Title)
	}
	if rec.ID == "" {
		t.Fatalf("expected generated id")
	}
	if rec.Text() != "\n## Release notes\nbody" {
		t.Fatalf("Text() = %q", rec.Text())
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	rec := NewRecord("demo", "hello world", 4, 0)
	if err := s.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(rec.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Text() != "hello world" {
		t.Fatalf("Text() = %q", got.Text())
	}

	got, err = s.Load(rec.ID[:8])
	if err != nil {
		t.Fatalf("Load by prefix: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("prefix load returned %q", got.ID)
	}
}

func TestStore_LoadUnknownID(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	if _, err := s.Load("nope"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestStore_LastAndListOrder(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	old := NewRecord("old entry", "a", 0, 0)
	old.CreatedAt = time.Now().UTC().Add(-time.Hour)
	recent := NewRecord("recent entry", "b", 0, 0)
	for _, rec := range []Record{old, recent} {
		if err := s.Save(rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	last, err := s.Last()
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last.ID != recent.ID {
		t.Fatalf("Last() = %q, want %q", last.Title, recent.Title)
	}

	recs, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != recent.ID {
		t.Fatalf("unexpected order: %#v", recs)
	}
}

func TestStore_ListFuzzyQuery(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	for _, title := range []string{"release notes draft", "meeting summary", "weekly report"} {
		if err := s.Save(NewRecord(title, title, 0, 0)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	recs, err := s.List("relnotes")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "release notes draft" {
		t.Fatalf("unexpected matches: %#v", recs)
	}
}

func TestStore_EmptyDirIsNotAnError(t *testing.T) {
	s := &Store{Dir: t.TempDir() + "/missing"}
	recs, err := s.List("")
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %#v", recs)
	}
	if _, err := s.Last(); err == nil {
		t.Fatalf("Last on empty store must error")
	}
}
