// Package transcript 负责回放记录的落盘与检索。
// 每条记录是一段按分片保存的流式消息，可用于离线回放。
package transcript

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Chunk 表示一次流式输出中的单个分片。
type Chunk struct {
	Text    string `json:"text"`
	DelayMs int    `json:"delay_ms,omitempty"`
}

// Record 表示一条可回放的流式消息。
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Chunks    []Chunk   `json:"chunks"`
}

// Text 返回所有分片拼接后的完整文本。
func (r Record) Text() string {
	var b strings.Builder
	for _, c := range r.Chunks {
		b.WriteString(c.Text)
	}
	return b.String()
}

// NewRecord 从完整文本构造记录：按 chunkSize 字符切片，标题取首个非空行。
func NewRecord(title, text string, chunkSize, delayMs int) Record {
	if title == "" {
		title = deriveTitle(text)
	}
	return Record{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Chunks:    Chunked(text, chunkSize, delayMs),
	}
}

// Chunked 将文本按 rune 数切成等长分片。chunkSize <= 0 时整段作为一个分片。
func Chunked(text string, chunkSize, delayMs int) []Chunk {
	if text == "" {
		return nil
	}
	if chunkSize <= 0 {
		return []Chunk{{Text: text, DelayMs: delayMs}}
	}
	runes := []rune(text)
	var out []Chunk
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, Chunk{Text: string(runes[start:end]), DelayMs: delayMs})
	}
	return out
}

func deriveTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#>*- `"))
		if line != "" {
			if r := []rune(line); len(r) > 60 {
				return string(r[:60])
			}
			return line
		}
	}
	return "untitled"
}
