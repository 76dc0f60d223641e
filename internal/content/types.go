// Package content turns a raw, possibly still-growing response buffer into a
// sequence of typed nodes suitable for display. The whole buffer is re-scanned
// on every call; there is no parser state carried between calls, so rendering
// the same string twice yields structurally identical output.
package content

// Node is anything the top-level Render can emit: a Reasoning unit or one of
// the Block variants.
type Node interface {
	renderNode()
}

// Block is one structural unit of a text segment (paragraph, list, table,
// code fence, ...). Every Block is also a Node.
type Block interface {
	Node
	blockNode()
}

// Inline is one formatting unit within a single line or cell of text.
type Inline interface {
	inlineNode()
}

// Reasoning is a chain-of-thought segment shown as a single collapsible unit.
// The body is verbatim text, not markdown. Closed=false means the closing tag
// has not arrived yet and the unit is still streaming.
type Reasoning struct {
	Body   string
	Closed bool
}

// CodeBlock is a fenced code block. Closed=false means the closing fence has
// not arrived yet; the accumulated lines are still shown.
type CodeBlock struct {
	Language string
	Lines    []string
	Closed   bool
}

// Blockquote holds quoted lines, each inline-formatted independently.
type Blockquote struct {
	Lines [][]Inline
}

// Heading is an ATX heading, level 1..6.
type Heading struct {
	Level   int
	Content []Inline
}

// UnorderedList holds "- " / "* " items.
type UnorderedList struct {
	Items [][]Inline
}

// OrderedList holds "<digits>. " items, markers stripped.
type OrderedList struct {
	Items [][]Inline
}

// Table holds pipe-table content. Header is nil when no separator row was
// present in the source.
type Table struct {
	Header [][]Inline
	Rows   [][][]Inline
}

// ToolActionRun groups a burst of agent telemetry lines ("Reading x",
// status-glyph lines, ...) into one collapsible unit. Lines are kept raw.
type ToolActionRun struct {
	Lines []string
}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

// BlankSpacer is a blank source line kept for vertical rhythm.
type BlankSpacer struct{}

// Paragraph is the default block: one inline-formatted source line.
type Paragraph struct {
	Content []Inline
}

func (Reasoning) renderNode()      {}
func (CodeBlock) renderNode()      {}
func (Blockquote) renderNode()     {}
func (Heading) renderNode()        {}
func (UnorderedList) renderNode()  {}
func (OrderedList) renderNode()    {}
func (Table) renderNode()          {}
func (ToolActionRun) renderNode()  {}
func (HorizontalRule) renderNode() {}
func (BlankSpacer) renderNode()    {}
func (Paragraph) renderNode()      {}

func (CodeBlock) blockNode()      {}
func (Blockquote) blockNode()     {}
func (Heading) blockNode()        {}
func (UnorderedList) blockNode()  {}
func (OrderedList) blockNode()    {}
func (Table) blockNode()          {}
func (ToolActionRun) blockNode()  {}
func (HorizontalRule) blockNode() {}
func (BlankSpacer) blockNode()    {}
func (Paragraph) blockNode()      {}

// Text is a literal run with no markup.
type Text struct {
	Text string
}

// Code is an inline code span. Path-like content is shortened to its final
// segment before display.
type Code struct {
	Text string
}

// Bold wraps children rendered in bold.
type Bold struct {
	Children []Inline
}

// Italic wraps children rendered in italics.
type Italic struct {
	Children []Inline
}

// Link is a [label](href) link.
type Link struct {
	Label []Inline
	Href  string
}

// Glyph is a short symbol sequence resolved to a named icon. Unknown icon
// names are rendered as nothing by the presentation layer.
type Glyph struct {
	Icon string
}

func (Text) inlineNode()   {}
func (Code) inlineNode()   {}
func (Bold) inlineNode()   {}
func (Italic) inlineNode() {}
func (Link) inlineNode()   {}
func (Glyph) inlineNode()  {}
