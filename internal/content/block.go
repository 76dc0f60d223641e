package content

import "strings"

// ParseBlocks walks the lines of one text segment and classifies contiguous
// runs into blocks. Recognizers are tried in a fixed priority order; each one
// reports how many lines it consumed and the driver advances by that amount,
// so the line sequence is partitioned with no gaps and no backtracking.
//
// A single trailing empty line (the artifact of a terminal "\n") is dropped
// before parsing; keeping it would emit a spacer that disappears again as
// soon as more text streams in, rewriting already-shown history.
func ParseBlocks(text string) []Block {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var blocks []Block
	for idx := 0; idx < len(lines); {
		block, consumed := parseBlockAt(lines[idx:])
		if consumed < 1 {
			consumed = 1
		}
		if block != nil {
			blocks = append(blocks, block)
		}
		idx += consumed
	}
	return blocks
}

// parseBlockAt classifies the block starting at lines[0]. A nil block with a
// positive consumed count means "consume but render nothing" (e.g. a table
// with no data rows yet).
func parseBlockAt(lines []string) (Block, int) {
	line := lines[0]
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, "```"):
		return parseCodeFence(lines)
	case trimmed == "":
		return BlankSpacer{}, 1
	case isHorizontalRule(trimmed):
		return HorizontalRule{}, 1
	case strings.HasPrefix(line, "> "):
		return parseBlockquote(lines)
	case headingLevel(line) > 0:
		level := headingLevel(line)
		return Heading{Level: level, Content: FormatInline(line[level+1:])}, 1
	case isUnorderedItem(line):
		return parseUnorderedList(lines)
	case isOrderedItem(line):
		return parseOrderedList(lines)
	case isTableRow(trimmed):
		return parseTable(lines)
	case isToolActionLine(line):
		return parseToolActionRun(lines)
	default:
		return Paragraph{Content: FormatInline(line)}, 1
	}
}

func parseCodeFence(lines []string) (Block, int) {
	opener := strings.TrimSpace(lines[0])
	block := CodeBlock{Language: strings.TrimSpace(opener[3:])}

	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			block.Closed = true
			return block, i + 1
		}
		block.Lines = append(block.Lines, lines[i])
	}
	// No closing fence yet: emit what arrived so far.
	return block, len(lines)
}

func parseBlockquote(lines []string) (Block, int) {
	var quoted [][]Inline
	i := 0
	for ; i < len(lines) && strings.HasPrefix(lines[i], "> "); i++ {
		quoted = append(quoted, FormatInline(lines[i][2:]))
	}
	return Blockquote{Lines: quoted}, i
}

// headingLevel returns 1..6 for "#"–"######" followed by a space, else 0.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

func isHorizontalRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != c {
			return false
		}
	}
	return true
}

func isUnorderedItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func parseUnorderedList(lines []string) (Block, int) {
	var items [][]Inline
	i := 0
	for ; i < len(lines) && isUnorderedItem(lines[i]); i++ {
		items = append(items, FormatInline(lines[i][2:]))
	}
	return UnorderedList{Items: items}, i
}

// isOrderedItem matches "<digits>. " at line start.
func isOrderedItem(line string) bool {
	return orderedMarkerLen(line) > 0
}

// orderedMarkerLen returns the length of the "<digits>. " prefix, or 0.
func orderedMarkerLen(line string) int {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) || line[i] != '.' || line[i+1] != ' ' {
		return 0
	}
	return i + 2
}

func parseOrderedList(lines []string) (Block, int) {
	var items [][]Inline
	i := 0
	for ; i < len(lines); i++ {
		n := orderedMarkerLen(lines[i])
		if n == 0 {
			break
		}
		items = append(items, FormatInline(lines[i][n:]))
	}
	return OrderedList{Items: items}, i
}

func isTableRow(trimmed string) bool {
	return len(trimmed) >= 2 && trimmed[0] == '|' && trimmed[len(trimmed)-1] == '|'
}

// isTableSeparator reports a delimiter row: only '-', ':', '|' and whitespace,
// with at least one dash.
func isTableSeparator(trimmed string) bool {
	dash := false
	for _, c := range trimmed {
		switch c {
		case '-':
			dash = true
		case ':', '|', ' ', '\t':
		default:
			return false
		}
	}
	return dash
}

func parseTable(lines []string) (Block, int) {
	i := 0
	var raw []string
	for ; i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if !isTableRow(t) {
			break
		}
		raw = append(raw, t)
	}

	hasSeparator := false
	var cells [][][]Inline
	for _, row := range raw {
		if isTableSeparator(row) {
			hasSeparator = true
			continue
		}
		cells = append(cells, splitTableCells(row))
	}

	table := Table{}
	if hasSeparator && len(cells) > 0 {
		table.Header = cells[0]
		table.Rows = cells[1:]
	} else {
		table.Rows = cells
	}
	if len(table.Rows) == 0 {
		// Nothing stable to show yet (header-only or separator-only run):
		// consume the lines but render nothing rather than an empty table.
		return nil, i
	}
	return table, i
}

// splitTableCells splits "| a | b |" into trimmed cell contents, dropping the
// empty fields produced by the leading and trailing pipe.
func splitTableCells(row string) [][]Inline {
	fields := strings.Split(row, "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	cells := make([][]Inline, 0, len(fields))
	for _, f := range fields {
		cells = append(cells, FormatInline(strings.TrimSpace(f)))
	}
	return cells
}
