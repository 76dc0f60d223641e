package content

import "strings"

// SegmentKind distinguishes ordinary text from chain-of-thought content.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentReasoning
)

// Segment is one top-level span of the buffer. Closed=false only occurs on a
// trailing reasoning segment whose closing tag has not arrived yet.
type Segment struct {
	Kind   SegmentKind
	Body   string
	Closed bool
}

// Both tag spellings are accepted interchangeably and case-insensitively; an
// opener in one spelling may be closed by the other, since mismatched
// spellings are a plausible streaming artifact.
var (
	reasoningOpenTags  = []string{"<thinking>", "<think>"}
	reasoningCloseTags = []string{"</thinking>", "</think>"}
)

// SplitSegments splits the buffer into ordered text/reasoning segments. An
// empty buffer yields an empty list ("nothing to render", not an error). If
// the buffer ends inside an unclosed reasoning tag, the rest of the buffer
// becomes an open reasoning segment.
func SplitSegments(buffer string) []Segment {
	if buffer == "" {
		return nil
	}
	lower := strings.ToLower(buffer)

	var segments []Segment
	pos := 0
	for {
		openIdx, openLen := findTag(lower, pos, reasoningOpenTags)
		if openIdx < 0 {
			if rest := buffer[pos:]; rest != "" {
				segments = append(segments, Segment{Kind: SegmentText, Body: rest, Closed: true})
			}
			return segments
		}
		if openIdx > pos {
			segments = append(segments, Segment{Kind: SegmentText, Body: buffer[pos:openIdx], Closed: true})
		}
		inner := openIdx + openLen
		closeIdx, closeLen := findTag(lower, inner, reasoningCloseTags)
		if closeIdx < 0 {
			segments = append(segments, Segment{
				Kind: SegmentReasoning,
				Body: strings.TrimSpace(buffer[inner:]),
			})
			return segments
		}
		segments = append(segments, Segment{
			Kind:   SegmentReasoning,
			Body:   strings.TrimSpace(buffer[inner:closeIdx]),
			Closed: true,
		})
		pos = closeIdx + closeLen
	}
}

// findTag locates the first occurrence of any tag at or after pos, returning
// its index and length, or (-1, 0).
func findTag(lower string, pos int, tags []string) (int, int) {
	for i := pos; i < len(lower); i++ {
		if lower[i] != '<' {
			continue
		}
		for _, tag := range tags {
			if strings.HasPrefix(lower[i:], tag) {
				return i, len(tag)
			}
		}
	}
	return -1, 0
}
