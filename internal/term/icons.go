package term

// iconGlyphs maps semantic icon identifiers (as produced by the content
// package) to the symbol actually printed. Unknown identifiers resolve to an
// empty string and render nothing; that is the contract, not an error.
var iconGlyphs = map[string]string{
	"check-circle": "✔",
	"x-circle":     "✘",
	"warning":      "⚠",
	"edit":         "✎",
	"play":         "▶",
	"record":       "⏺",
	"hourglass":    "⧗",
	"search":       "⌕",
	"file":         "▤",
	"folder":       "▣",
	"rocket":       "➤",
	"bulb":         "✦",
	"wrench":       "⚙",
	"brain":        "∴",
	"check":        "✓",
	"cross":        "✗",
	"dot-filled":   "●",
	"dot":          "○",
	"dot-half":     "◐",
	"arrow-right":  "→",
}

// ResolveIcon returns the printable symbol for an icon identifier, or "" when
// the identifier is unknown.
func ResolveIcon(name string) string {
	return iconGlyphs[name]
}
