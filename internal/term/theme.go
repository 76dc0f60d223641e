package term

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the renderer. Styles are value types, so a
// Theme can be copied and tweaked freely.
type Theme struct {
	Heading    lipgloss.Style
	SubHeading lipgloss.Style
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	Code       lipgloss.Style
	Link       lipgloss.Style
	Quote      lipgloss.Style
	QuoteBar   lipgloss.Style
	ListMarker lipgloss.Style
	TableHead  lipgloss.Style
	Rule       lipgloss.Style
	Tool       lipgloss.Style
	Reasoning  lipgloss.Style
	Streaming  lipgloss.Style
	Glyph      lipgloss.Style
}

// NewTheme returns the theme for the given name. Unknown names fall back to
// dark.
func NewTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default:
		return darkTheme()
	}
}

func darkTheme() Theme {
	return Theme{
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		SubHeading: lipgloss.NewStyle().Bold(true),
		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		Link:       lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#61AFEF")),
		Quote:      lipgloss.NewStyle().Faint(true),
		QuoteBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ListMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		TableHead:  lipgloss.NewStyle().Bold(true),
		Rule:       lipgloss.NewStyle().Faint(true),
		Tool:       lipgloss.NewStyle().Faint(true),
		Reasoning:  lipgloss.NewStyle().Faint(true).Italic(true),
		Streaming:  lipgloss.NewStyle().Faint(true),
		Glyph:      lipgloss.NewStyle().Foreground(lipgloss.Color("#4FB965")),
	}
}

func lightTheme() Theme {
	return Theme{
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5A32C8")),
		SubHeading: lipgloss.NewStyle().Bold(true),
		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("#986801")),
		Link:       lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#4078F2")),
		Quote:      lipgloss.NewStyle().Faint(true),
		QuoteBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ListMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("#5A32C8")),
		TableHead:  lipgloss.NewStyle().Bold(true),
		Rule:       lipgloss.NewStyle().Faint(true),
		Tool:       lipgloss.NewStyle().Faint(true),
		Reasoning:  lipgloss.NewStyle().Faint(true).Italic(true),
		Streaming:  lipgloss.NewStyle().Faint(true),
		Glyph:      lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")),
	}
}
