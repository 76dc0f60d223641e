package content

import (
	"strings"
	"unicode/utf8"
)

// toolActionVerbs are the "agent is doing X" prefixes emitted by the agent
// runner, always followed by the resource being acted on.
var toolActionVerbs = []string{
	"Reading ",
	"Editing ",
	"Writing ",
	"Running ",
	"Searching ",
	"Spawning ",
}

// toolStatusGlyphs start telemetry lines like "✓ build passed".
const toolStatusGlyphs = "⏺✓✗●○◐"

// isToolActionLine reports whether a line is agent telemetry: a known verb
// prefix with a non-empty remainder, or a status glyph at line start.
func isToolActionLine(line string) bool {
	for _, verb := range toolActionVerbs {
		if strings.HasPrefix(line, verb) && strings.TrimSpace(line[len(verb):]) != "" {
			return true
		}
	}
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 || !strings.ContainsRune(toolStatusGlyphs, r) {
		return false
	}
	return len(line) == size || line[size] == ' '
}

// parseToolActionRun folds consecutive telemetry lines into one collapsible
// run. Blank lines are absorbed only when a later line resumes the pattern;
// otherwise the run ends before them.
func parseToolActionRun(lines []string) (Block, int) {
	run := []string{lines[0]}
	i := 1
	for i < len(lines) {
		if isToolActionLine(lines[i]) {
			run = append(run, lines[i])
			i++
			continue
		}
		if strings.TrimSpace(lines[i]) != "" {
			break
		}
		j := i
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j >= len(lines) || !isToolActionLine(lines[j]) {
			break
		}
		run = append(run, lines[i:j+1]...)
		i = j + 1
	}
	return ToolActionRun{Lines: run}, i
}
