package term

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightCodeToLines runs chroma over a code block and returns one Line per
// source line, each carrying pre-styled ANSI text. On any failure the plain
// source lines are returned unstyled; chroma handles unknown languages by
// itself, the guard covers formatter errors.
func HighlightCodeToLines(lines []string, language string) []Line {
	source := strings.Join(lines, "\n")
	var sb strings.Builder
	if err := quick.Highlight(&sb, source, language, "terminal256", "monokai"); err != nil {
		return plainCodeLines(lines)
	}
	highlighted := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(highlighted) != len(lines) {
		// Formatter changed the line structure; fall back rather than
		// misalign the block.
		return plainCodeLines(lines)
	}
	out := make([]Line, 0, len(highlighted))
	for _, l := range highlighted {
		out = append(out, Line{Spans: []Span{{Text: l}}})
	}
	return out
}

func plainCodeLines(lines []string) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, Line{Spans: []Span{{Text: l}}})
	}
	return out
}
