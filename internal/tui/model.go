package tui

import (
	"fmt"
	"strings"
	"time"

	"rill-cli/internal/content"
	"rill-cli/internal/logger"
	"rill-cli/internal/term"
	"rill-cli/internal/transcript"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	Record   transcript.Record
	Renderer *term.Renderer
	// DefaultDelay 用于没有自带延迟的分片。
	DefaultDelay time.Duration
}

type chunkTickMsg struct {
	seq int
}

type flashClearMsg struct{}

type Model struct {
	record   transcript.Record
	renderer *term.Renderer
	printer  *term.Printer
	viewport viewport.Model
	spin     spinner.Model

	delay  time.Duration
	next   int
	paused bool
	done   bool
	flash  string
	width  int
	height int
	ready  bool
}

func New(opts Options) *Model {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = term.NewRenderer(0, term.NewTheme("dark"))
	}
	delay := opts.DefaultDelay
	if delay <= 0 {
		delay = 30 * time.Millisecond
	}
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	return &Model{
		record:   opts.Record,
		renderer: renderer,
		printer:  term.NewPrinter(renderer),
		viewport: viewport.New(80, 20),
		spin:     spin,
		delay:    delay,
		width:    80,
		height:   24,
	}
}

func (m *Model) Init() tea.Cmd {
	logger.StreamLog.PlaybackStarted(m.record.ID, len(m.record.Chunks))
	return tea.Batch(m.spin.Tick, m.scheduleChunk())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case chunkTickMsg:
		if m.paused || msg.seq != m.next {
			return m, nil
		}
		cmds = append(cmds, m.feedChunk())
		return m, tea.Batch(cmds...)
	case flashClearMsg:
		m.flash = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused && !m.done {
				cmds = append(cmds, m.scheduleChunk())
			}
			return m, tea.Batch(cmds...)
		case "j", "down":
			m.viewport.LineDown(1)
			return m, nil
		case "k", "up":
			m.viewport.LineUp(1)
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		case "c":
			cmds = append(cmds, m.copyLastCode())
			return m, tea.Batch(cmds...)
		case "r":
			m.renderer.ReasoningExpanded = !m.renderer.ReasoningExpanded
			m.rerender()
			return m, nil
		case "R":
			m.restart()
			cmds = append(cmds, m.scheduleChunk())
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	header := renderHeader(m.record.Title, m.width)
	status := m.statusLine()
	hints := renderHints(m.width)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), status, hints)
}

// Done 返回回放是否播完，供 Run 结束后查询。
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) scheduleChunk() tea.Cmd {
	if m.done || m.next >= len(m.record.Chunks) {
		return nil
	}
	seq := m.next
	delay := m.delay
	if d := m.record.Chunks[seq].DelayMs; d > 0 {
		delay = time.Duration(d) * time.Millisecond
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return chunkTickMsg{seq: seq}
	})
}

func (m *Model) feedChunk() tea.Cmd {
	if m.next >= len(m.record.Chunks) {
		return nil
	}
	chunk := m.record.Chunks[m.next]
	m.printer.Append(chunk.Text)
	logger.StreamLog.ChunkFed(m.record.ID, chunk.Text, m.next)
	m.next++
	m.refreshViewport()

	if m.next >= len(m.record.Chunks) {
		m.done = true
		logger.StreamLog.PlaybackFinished(m.record.ID, len(m.record.Chunks))
		return nil
	}
	return m.scheduleChunk()
}

// rerender 在渲染选项变化后用同一缓冲区重建打印器。
func (m *Model) rerender() {
	buffer := m.printer.Buffer()
	m.printer = term.NewPrinter(m.renderer)
	m.printer.Append(buffer)
	m.refreshViewport()
}

func (m *Model) restart() {
	m.printer = term.NewPrinter(m.renderer)
	m.next = 0
	m.done = false
	m.paused = false
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(m.printer.Lines(), "\n"))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// copyLastCode 把最近一个已闭合代码块的原文写入剪贴板。
func (m *Model) copyLastCode() tea.Cmd {
	var code *content.CodeBlock
	for _, node := range content.Render(m.printer.Buffer()) {
		if block, ok := node.(content.CodeBlock); ok && block.Closed {
			b := block
			code = &b
		}
	}
	if code == nil {
		m.flash = "no code block to copy"
		return clearFlashLater()
	}
	if err := clipboard.WriteAll(strings.Join(code.Lines, "\n")); err != nil {
		m.flash = fmt.Sprintf("copy failed: %v", err)
		return clearFlashLater()
	}
	m.flash = "code copied"
	return clearFlashLater()
}

func clearFlashLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashClearMsg{}
	})
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	headerHeight := 1
	statusHeight := 1
	hintsHeight := 1
	bodyHeight := height - headerHeight - statusHeight - hintsHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = bodyHeight
	if m.renderer.Width != width {
		m.renderer.Width = width
		// 宽度变化后整体重排。
		buffer := m.printer.Buffer()
		m.printer = term.NewPrinter(m.renderer)
		m.printer.Append(buffer)
	}
	m.ready = true
	m.refreshViewport()
}

func (m *Model) statusLine() string {
	parts := []string{fmt.Sprintf("chunk %d/%d", m.next, len(m.record.Chunks))}
	switch {
	case m.done:
		parts = append(parts, "done")
	case m.paused:
		parts = append(parts, "paused")
	default:
		parts = append(parts, "streaming… "+m.spin.View())
	}
	if m.flash != "" {
		parts = append(parts, m.flash)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D7A85")).
		Padding(0, 1).
		Width(maxInt(20, m.width)).
		Render(strings.Join(parts, " • "))
}

func renderHeader(title string, width int) string {
	if title == "" {
		title = "playback"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		Width(maxInt(20, width)).
		Render(title)
}

func renderHints(width int) string {
	hint := "space 暂停/继续 • j/k 滚动 • c 复制代码 • r 展开思考 • R 重放 • q 退出"
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D7A85")).
		Padding(0, 1).
		Width(maxInt(20, width)).
		Render(hint)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
