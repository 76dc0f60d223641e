package content

import "sort"

// symbolTable maps short glyph sequences in the source text to semantic icon
// identifiers. Read-only after init; lookups go through LookupSymbol and
// matchSymbolPrefix. Variation-selector forms (e.g. "⚠️") are listed alongside
// their base codepoint so that longest-match wins when both are present.
var symbolTable = map[string]string{
	"✅":  "check-circle",
	"❌":  "x-circle",
	"⚠️": "warning",
	"⚠":  "warning",
	"✏️": "edit",
	"✏":  "edit",
	"▶️": "play",
	"▶":  "play",
	"⏺":  "record",
	"⏳":  "hourglass",
	"🔍":  "search",
	"📄":  "file",
	"📁":  "folder",
	"🚀":  "rocket",
	"💡":  "bulb",
	"🔧":  "wrench",
	"🧠":  "brain",
	"✓":  "check",
	"✗":  "cross",
	"●":  "dot-filled",
	"○":  "dot",
	"◐":  "dot-half",
	"→":  "arrow-right",
}

// symbolKeys holds the table keys sorted longest-first so prefix matching
// prefers "⚠️" (base + variation selector) over "⚠".
var symbolKeys []string

func init() {
	symbolKeys = make([]string, 0, len(symbolTable))
	for k := range symbolTable {
		symbolKeys = append(symbolKeys, k)
	}
	sort.Slice(symbolKeys, func(i, j int) bool {
		if len(symbolKeys[i]) != len(symbolKeys[j]) {
			return len(symbolKeys[i]) > len(symbolKeys[j])
		}
		return symbolKeys[i] < symbolKeys[j]
	})
}

// LookupSymbol returns the icon identifier for an exact glyph key.
func LookupSymbol(key string) (string, bool) {
	icon, ok := symbolTable[key]
	return icon, ok
}

// matchSymbolPrefix finds the longest symbol key that s starts with.
func matchSymbolPrefix(s string) (key, icon string, ok bool) {
	for _, k := range symbolKeys {
		if len(s) >= len(k) && s[:len(k)] == k {
			return k, symbolTable[k], true
		}
	}
	return "", "", false
}
