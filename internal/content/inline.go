package content

import (
	"strings"
	"unicode/utf8"
)

// FormatInline scans one line (or cell) of text left to right and returns its
// inline nodes. Paired markers that never close before the end of the line
// degrade instead of erroring: an open backtick or ** consumes the rest of
// the line as code/bold, an open [ falls back to literal text. A stray single
// * or _ with no close stays literal.
func FormatInline(line string) []Inline {
	var out []Inline
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			out = append(out, Text{Text: plain.String()})
			plain.Reset()
		}
	}

	// Every branch advances the cursor, so the cap is never reached in
	// practice; it guards against a future branch regressing into a spin.
	maxSteps := 2*len(line) + 16

	i := 0
	for steps := 0; i < len(line); steps++ {
		if steps > maxSteps {
			plain.WriteString(line[i:])
			break
		}
		rest := line[i:]

		switch {
		case rest[0] == '`':
			flush()
			if end := strings.IndexByte(rest[1:], '`'); end >= 0 {
				out = append(out, Code{Text: ShortenPath(rest[1 : 1+end])})
				i += end + 2
			} else {
				out = append(out, Code{Text: ShortenPath(rest[1:])})
				i = len(line)
			}

		case strings.HasPrefix(rest, "**"):
			flush()
			if end := strings.Index(rest[2:], "**"); end >= 0 {
				out = append(out, Bold{Children: FormatInline(rest[2 : 2+end])})
				i += end + 4
			} else {
				out = append(out, Bold{Children: FormatInline(rest[2:])})
				i = len(line)
			}

		case rest[0] == '*' || rest[0] == '_':
			marker := rest[0]
			end := strings.IndexByte(rest[1:], marker)
			if end > 0 {
				flush()
				out = append(out, Italic{Children: FormatInline(rest[1 : 1+end])})
				i += end + 2
			} else {
				// No close (or empty content): the marker is literal.
				plain.WriteByte(marker)
				i++
			}

		case rest[0] == '[':
			mid := strings.Index(rest, "](")
			end := -1
			if mid > 0 {
				end = strings.IndexByte(rest[mid+2:], ')')
			}
			if mid > 0 && end >= 0 {
				flush()
				out = append(out, Link{
					Label: FormatInline(rest[1:mid]),
					Href:  rest[mid+2 : mid+2+end],
				})
				i += mid + 2 + end + 1
			} else {
				// Incomplete link: keep the remainder literal rather than
				// guessing a destination mid-stream.
				plain.WriteString(rest)
				i = len(line)
			}

		default:
			if key, icon, ok := matchSymbolPrefix(rest); ok {
				flush()
				out = append(out, Glyph{Icon: icon})
				i += len(key)
				break
			}
			_, size := utf8.DecodeRuneInString(rest)
			plain.WriteString(rest[:size])
			i += size
		}
	}
	flush()
	return out
}

// ShortenPath rewrites a path-like token of two or more segments to just its
// final segment ("src/pkg/file.go" -> "file.go"). Tokens containing spaces or
// a scheme separator are returned unchanged.
func ShortenPath(s string) string {
	if !strings.Contains(s, "/") || strings.ContainsAny(s, " \t") || strings.Contains(s, "://") {
		return s
	}
	base := s[strings.LastIndexByte(s, '/')+1:]
	if base == "" {
		return s
	}
	return base
}

// InlineText is the visible-text projection of inline nodes: markup
// delimiters are gone, replaced symbols surface as their icon name.
func InlineText(nodes []Inline) string {
	var b strings.Builder
	writeInlineText(&b, nodes)
	return b.String()
}

func writeInlineText(b *strings.Builder, nodes []Inline) {
	for _, n := range nodes {
		switch v := n.(type) {
		case Text:
			b.WriteString(v.Text)
		case Code:
			b.WriteString(v.Text)
		case Bold:
			writeInlineText(b, v.Children)
		case Italic:
			writeInlineText(b, v.Children)
		case Link:
			writeInlineText(b, v.Label)
		case Glyph:
			b.WriteString(v.Icon)
		}
	}
}
