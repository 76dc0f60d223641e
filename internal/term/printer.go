package term

import "strings"

// Printer owns the growing buffer for one streamed message and re-renders it
// from scratch on every append, returning the repaint needed since the
// previous call. The total re-scan is deliberate: buffers are chat-message
// sized, and it keeps the pipeline free of parser state.
type Printer struct {
	renderer *Renderer
	buf      strings.Builder
	last     []string
}

// Delta 描述一次追加后需要的重绘：第 From 行起的旧内容作废，
// 依次输出 Lines。Lines 为空且 From 小于上次行数时表示纯删除。
type Delta struct {
	From  int
	Lines []string
}

// NewPrinter 创建针对单条消息的流式打印器。
func NewPrinter(renderer *Renderer) *Printer {
	return &Printer{renderer: renderer}
}

// Append adds a chunk to the buffer and returns the repaint from the first
// changed line onward. A render can also shrink (a pipe row collapsing into a
// header-only table, a closed fence dropping its trailer); the caller erases
// everything from From before printing Lines.
func (p *Printer) Append(chunk string) Delta {
	if p == nil {
		return Delta{}
	}
	p.buf.WriteString(chunk)
	return p.renderDelta()
}

// Lines returns the full render of the current buffer.
func (p *Printer) Lines() []string {
	if p == nil {
		return nil
	}
	return LinesToStrings(p.renderer.RenderBuffer(p.buf.String()))
}

// Buffer returns the raw accumulated text.
func (p *Printer) Buffer() string {
	if p == nil {
		return ""
	}
	return p.buf.String()
}

func (p *Printer) renderDelta() Delta {
	lines := LinesToStrings(p.renderer.RenderBuffer(p.buf.String()))
	start := 0
	for start < len(lines) && start < len(p.last) && p.last[start] == lines[start] {
		start++
	}
	p.last = lines
	return Delta{From: start, Lines: lines[start:]}
}
