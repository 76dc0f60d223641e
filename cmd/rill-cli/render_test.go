package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"rill-cli/internal/term"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func TestRepaint_GrowingRender(t *testing.T) {
	var printed int
	out := captureStdout(t, func() {
		printed = repaint(0, term.Delta{From: 0, Lines: []string{"a", "b"}})
	})
	if printed != 2 {
		t.Fatalf("printed = %d, want 2", printed)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("first paint must not rewind, got %q", out)
	}
}

func TestRepaint_AmendedSuffix(t *testing.T) {
	var printed int
	out := captureStdout(t, func() {
		printed = repaint(2, term.Delta{From: 1, Lines: []string{"b2", "c"}})
	})
	if printed != 3 {
		t.Fatalf("printed = %d, want 3", printed)
	}
	if !strings.Contains(out, "\x1b[1A\x1b[0J") {
		t.Fatalf("expected one-line rewind, got %q", out)
	}
}

func TestRepaint_ShrinkErasesStaleLines(t *testing.T) {
	var printed int
	out := captureStdout(t, func() {
		printed = repaint(1, term.Delta{From: 0, Lines: nil})
	})
	if printed != 0 {
		t.Fatalf("printed = %d, want 0", printed)
	}
	if !strings.Contains(out, "\x1b[1A\x1b[0J") {
		t.Fatalf("stale line not erased, got %q", out)
	}
}
