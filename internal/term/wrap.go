package term

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapPlain 使用词级别换行，按显示宽度计算（CJK 宽字符占两列）。
func wrapPlain(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	lines := []string{}
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(raw, width)...)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

func wrapLine(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	out := []string{}
	current := ""
	for _, word := range strings.Fields(line) {
		if current == "" {
			if runewidth.StringWidth(word) > width {
				out = append(out, breakLongWord(word, width)...)
				continue
			}
			current = word
			continue
		}
		if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width {
			current += " " + word
			continue
		}
		out = append(out, current)
		if runewidth.StringWidth(word) > width {
			out = append(out, breakLongWord(word, width)...)
			current = ""
			continue
		}
		current = word
	}
	if current != "" {
		out = append(out, current)
	}
	if len(out) == 0 {
		return []string{line}
	}
	return out
}

func breakLongWord(word string, width int) []string {
	if width <= 0 {
		return []string{word}
	}
	out := []string{}
	current := []rune{}
	w := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && len(current) > 0 {
			out = append(out, string(current))
			current = current[:0]
			w = 0
		}
		current = append(current, r)
		w += rw
	}
	if len(current) > 0 {
		out = append(out, string(current))
	}
	if len(out) == 0 {
		return []string{word}
	}
	return out
}

// wrapSpans 在不丢失样式的前提下按显示宽度拆分 Span 序列。
// 断行按字符进行（保留空格），与工具块的处理方式一致。
func wrapSpans(spans []Span, width int) []Line {
	if width <= 0 {
		return []Line{{Spans: spans}}
	}
	out := []Line{}
	current := []Span{}
	w := 0
	for _, sp := range spans {
		pending := []rune{}
		flushPending := func() {
			if len(pending) > 0 {
				current = append(current, Span{Text: string(pending), Style: sp.Style})
				pending = pending[:0]
			}
		}
		for _, r := range sp.Text {
			rw := runewidth.RuneWidth(r)
			if w+rw > width && w > 0 {
				flushPending()
				out = append(out, Line{Spans: current})
				current = []Span{}
				w = 0
			}
			pending = append(pending, r)
			w += rw
		}
		flushPending()
	}
	if len(current) > 0 || len(out) == 0 {
		out = append(out, Line{Spans: current})
	}
	return out
}
