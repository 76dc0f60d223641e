package content

import "strings"

// Render is the top-level pipeline: segment the buffer, block-parse each text
// segment, and surface reasoning segments as single collapsible units. Pure
// and idempotent; callers may memoize by buffer content.
func Render(buffer string) []Node {
	var nodes []Node
	for _, seg := range SplitSegments(buffer) {
		if seg.Kind == SegmentReasoning {
			nodes = append(nodes, Reasoning{Body: seg.Body, Closed: seg.Closed})
			continue
		}
		for _, block := range ParseBlocks(seg.Body) {
			nodes = append(nodes, block)
		}
	}
	return nodes
}

// VisibleText projects rendered nodes back to their visible text, one line
// per block line. Markup delimiters are gone; spacers collapse to blank
// lines. Used by the no-data-loss checks and the clipboard copy feature.
func VisibleText(nodes []Node) string {
	var lines []string
	for _, node := range nodes {
		switch v := node.(type) {
		case Reasoning:
			lines = append(lines, v.Body)
		case CodeBlock:
			lines = append(lines, v.Lines...)
		case Blockquote:
			for _, l := range v.Lines {
				lines = append(lines, InlineText(l))
			}
		case Heading:
			lines = append(lines, InlineText(v.Content))
		case UnorderedList:
			for _, item := range v.Items {
				lines = append(lines, InlineText(item))
			}
		case OrderedList:
			for _, item := range v.Items {
				lines = append(lines, InlineText(item))
			}
		case Table:
			for _, row := range append([][][]Inline{v.Header}, v.Rows...) {
				if row == nil {
					continue
				}
				cells := make([]string, 0, len(row))
				for _, cell := range row {
					cells = append(cells, InlineText(cell))
				}
				lines = append(lines, strings.Join(cells, " "))
			}
		case ToolActionRun:
			lines = append(lines, v.Lines...)
		case HorizontalRule:
			lines = append(lines, "")
		case BlankSpacer:
			lines = append(lines, "")
		case Paragraph:
			lines = append(lines, InlineText(v.Content))
		}
	}
	return strings.Join(lines, "\n")
}
