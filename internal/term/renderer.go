package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rill-cli/internal/content"
)

// Renderer turns content nodes into styled terminal lines. It is stateless
// apart from its options; rendering the same nodes twice yields the same
// lines.
type Renderer struct {
	Width             int
	Theme             Theme
	Highlight         bool
	ToolRunLimit      int
	ReasoningExpanded bool
}

// NewRenderer 创建带默认宽度的渲染器。
func NewRenderer(width int, theme Theme) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{
		Width:        width,
		Theme:        theme,
		Highlight:    true,
		ToolRunLimit: 6,
	}
}

// RenderBuffer 渲染完整缓冲区：先经内容管线分类，再逐节点布局。
func (r *Renderer) RenderBuffer(buffer string) []Line {
	return r.RenderNodes(content.Render(buffer))
}

// RenderNodes renders classified nodes in order.
func (r *Renderer) RenderNodes(nodes []content.Node) []Line {
	var out []Line
	for _, node := range nodes {
		out = append(out, r.renderNode(node)...)
	}
	return out
}

func (r *Renderer) renderNode(node content.Node) []Line {
	switch v := node.(type) {
	case content.Reasoning:
		return r.renderReasoning(v)
	case content.CodeBlock:
		return r.renderCode(v)
	case content.Blockquote:
		return r.renderBlockquote(v)
	case content.Heading:
		return r.renderHeading(v)
	case content.UnorderedList:
		return r.renderList(v.Items, func(int) string { return "• " })
	case content.OrderedList:
		return r.renderList(v.Items, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
	case content.Table:
		return r.renderTable(v)
	case content.ToolActionRun:
		return r.renderToolRun(v)
	case content.HorizontalRule:
		width := r.Width
		if width > 0 {
			return []Line{{Spans: []Span{{Text: strings.Repeat("─", width), Style: r.Theme.Rule}}}}
		}
		return []Line{{Spans: []Span{{Text: "───", Style: r.Theme.Rule}}}}
	case content.BlankSpacer:
		return []Line{{}}
	case content.Paragraph:
		return wrapSpans(r.inlineSpans(v.Content), r.Width)
	}
	return nil
}

func (r *Renderer) renderHeading(h content.Heading) []Line {
	style := r.Theme.Heading
	if h.Level > 2 {
		style = r.Theme.SubHeading
	}
	spans := r.inlineSpans(h.Content)
	for i := range spans {
		spans[i].Style = spans[i].Style.Inherit(style)
	}
	return wrapSpans(spans, r.Width)
}

func (r *Renderer) renderCode(code content.CodeBlock) []Line {
	var body []Line
	if r.Highlight {
		body = HighlightCodeToLines(code.Lines, code.Language)
	} else {
		body = plainCodeLines(code.Lines)
	}
	out := PrefixLines(body, Span{Text: "  "}, Span{Text: "  "})
	if !code.Closed {
		out = append(out, Line{Spans: []Span{{Text: "  … streaming", Style: r.Theme.Streaming}}})
	}
	return out
}

func (r *Renderer) renderBlockquote(quote content.Blockquote) []Line {
	var out []Line
	for _, line := range quote.Lines {
		spans := r.inlineSpans(line)
		for i := range spans {
			spans[i].Style = spans[i].Style.Inherit(r.Theme.Quote)
		}
		wrapped := wrapSpans(spans, maxInt(1, r.Width-2))
		out = append(out, PrefixLines(wrapped,
			Span{Text: "│ ", Style: r.Theme.QuoteBar},
			Span{Text: "│ ", Style: r.Theme.QuoteBar})...)
	}
	return out
}

func (r *Renderer) renderList(items [][]content.Inline, marker func(int) string) []Line {
	var out []Line
	for i, item := range items {
		m := marker(i)
		wrapped := wrapSpans(r.inlineSpans(item), maxInt(1, r.Width-runewidth.StringWidth(m)))
		out = append(out, PrefixLines(wrapped,
			Span{Text: m, Style: r.Theme.ListMarker},
			Span{Text: strings.Repeat(" ", runewidth.StringWidth(m))})...)
	}
	return out
}

func (r *Renderer) renderTable(table content.Table) []Line {
	rows := make([][]string, 0, len(table.Rows)+1)
	if table.Header != nil {
		rows = append(rows, cellTexts(table.Header))
	}
	for _, row := range table.Rows {
		rows = append(rows, cellTexts(row))
	}
	widths := columnWidths(rows)

	var out []Line
	for i, row := range rows {
		spans := make([]Span, 0, len(row)*2)
		style := lipgloss.Style{}
		if table.Header != nil && i == 0 {
			style = r.Theme.TableHead
		}
		for c, cell := range row {
			pad := widths[c] - runewidth.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			spans = append(spans, Span{Text: cell + strings.Repeat(" ", pad), Style: style})
			if c < len(row)-1 {
				spans = append(spans, Span{Text: "  "})
			}
		}
		out = append(out, Line{Spans: spans})
		if table.Header != nil && i == 0 {
			total := 0
			for _, w := range widths {
				total += w + 2
			}
			if total > 2 {
				total -= 2
			}
			out = append(out, Line{Spans: []Span{{Text: strings.Repeat("─", total), Style: r.Theme.Rule}}})
		}
	}
	return out
}

func (r *Renderer) renderToolRun(run content.ToolActionRun) []Line {
	lines := run.Lines
	truncated := 0
	if r.ToolRunLimit > 0 && len(lines) > r.ToolRunLimit {
		truncated = len(lines) - r.ToolRunLimit
		lines = lines[:r.ToolRunLimit]
	}
	var out []Line
	for _, l := range lines {
		out = append(out, Line{Spans: []Span{{Text: l, Style: r.Theme.Tool}}})
	}
	if truncated > 0 {
		out = append(out, Line{Spans: []Span{{
			Text:  fmt.Sprintf("… (+%d more)", truncated),
			Style: r.Theme.Tool,
		}}})
	}
	return out
}

func (r *Renderer) renderReasoning(reasoning content.Reasoning) []Line {
	header := "∴ thinking"
	if !reasoning.Closed {
		header += "…"
	}
	out := []Line{{Spans: []Span{{Text: header, Style: r.Theme.Reasoning}}}}
	if !r.ReasoningExpanded && reasoning.Closed {
		return out
	}
	for _, raw := range wrapPlain(reasoning.Body, maxInt(1, r.Width-2)) {
		out = append(out, Line{Spans: []Span{{Text: "  " + raw, Style: r.Theme.Reasoning}}})
	}
	return out
}

// inlineSpans flattens inline nodes into styled spans. Nested styles inherit
// from their parent (bold code stays bold).
func (r *Renderer) inlineSpans(nodes []content.Inline) []Span {
	return r.appendInlineSpans(nil, nodes, lipgloss.Style{})
}

func (r *Renderer) appendInlineSpans(out []Span, nodes []content.Inline, parent lipgloss.Style) []Span {
	for _, n := range nodes {
		switch v := n.(type) {
		case content.Text:
			out = append(out, Span{Text: v.Text, Style: parent})
		case content.Code:
			out = append(out, Span{Text: v.Text, Style: r.Theme.Code.Inherit(parent)})
		case content.Bold:
			out = r.appendInlineSpans(out, v.Children, r.Theme.Bold.Inherit(parent))
		case content.Italic:
			out = r.appendInlineSpans(out, v.Children, r.Theme.Italic.Inherit(parent))
		case content.Link:
			out = r.appendInlineSpans(out, v.Label, r.Theme.Link.Inherit(parent))
		case content.Glyph:
			if symbol := ResolveIcon(v.Icon); symbol != "" {
				out = append(out, Span{Text: symbol, Style: r.Theme.Glyph.Inherit(parent)})
			}
		}
	}
	return out
}

func cellTexts(row [][]content.Inline) []string {
	out := make([]string, 0, len(row))
	for _, cell := range row {
		out = append(out, content.InlineText(cell))
	}
	return out
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			w := runewidth.StringWidth(cell)
			if c >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
