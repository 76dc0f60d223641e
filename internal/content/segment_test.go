package content

import (
	"reflect"
	"testing"
)

func TestSplitSegments_EmptyBuffer(t *testing.T) {
	if segs := SplitSegments(""); len(segs) != 0 {
		t.Fatalf("expected no segments for empty buffer, got %#v", segs)
	}
}

func TestSplitSegments_NoMarkers(t *testing.T) {
	segs := SplitSegments("just text\nwith lines")
	want := []Segment{{Kind: SegmentText, Body: "just text\nwith lines", Closed: true}}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("got %#v, want %#v", segs, want)
	}
}

func TestSplitSegments_ClosedReasoningThenText(t *testing.T) {
	segs := SplitSegments("<thinking>plan</thinking>answer")
	want := []Segment{
		{Kind: SegmentReasoning, Body: "plan", Closed: true},
		{Kind: SegmentText, Body: "answer", Closed: true},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("got %#v, want %#v", segs, want)
	}
}

func TestSplitSegments_OpenReasoningConsumesRest(t *testing.T) {
	segs := SplitSegments("<thinking>still going")
	want := []Segment{{Kind: SegmentReasoning, Body: "still going"}}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("got %#v, want %#v", segs, want)
	}
}

func TestSplitSegments_TextBeforeMarker(t *testing.T) {
	segs := SplitSegments("intro <think>hm</think> outro")
	want := []Segment{
		{Kind: SegmentText, Body: "intro ", Closed: true},
		{Kind: SegmentReasoning, Body: "hm", Closed: true},
		{Kind: SegmentText, Body: " outro", Closed: true},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("got %#v, want %#v", segs, want)
	}
}

func TestSplitSegments_MixedSpellings(t *testing.T) {
	// An opener in one spelling may be closed by the other; mismatched
	// spellings show up in real streams.
	cases := []struct {
		name string
		in   string
	}{
		{"short open long close", "<think>plan</thinking>done"},
		{"long open short close", "<thinking>plan</think>done"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs := SplitSegments(tc.in)
			want := []Segment{
				{Kind: SegmentReasoning, Body: "plan", Closed: true},
				{Kind: SegmentText, Body: "done", Closed: true},
			}
			if !reflect.DeepEqual(segs, want) {
				t.Fatalf("got %#v, want %#v", segs, want)
			}
		})
	}
}

func TestSplitSegments_CaseInsensitive(t *testing.T) {
	segs := SplitSegments("<Thinking>plan</THINKING>rest")
	if len(segs) != 2 || segs[0].Kind != SegmentReasoning || segs[0].Body != "plan" {
		t.Fatalf("unexpected segments %#v", segs)
	}
	// Bodies keep the original casing of the buffer, only tags are matched
	// case-insensitively.
	if segs[1].Body != "rest" {
		t.Fatalf("unexpected trailing text %q", segs[1].Body)
	}
}

func TestSplitSegments_InnerWhitespaceTrimmed(t *testing.T) {
	segs := SplitSegments("<thinking>\n  plan here\n</thinking>")
	if len(segs) != 1 || segs[0].Body != "plan here" {
		t.Fatalf("expected trimmed reasoning body, got %#v", segs)
	}
}

func TestSplitSegments_MultipleReasoningSpans(t *testing.T) {
	segs := SplitSegments("<think>a</think>mid<think>b")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %#v", segs)
	}
	if segs[2].Kind != SegmentReasoning || segs[2].Closed {
		t.Fatalf("expected trailing open reasoning segment, got %#v", segs[2])
	}
	if segs[2].Body != "b" {
		t.Fatalf("unexpected body %q", segs[2].Body)
	}
}
