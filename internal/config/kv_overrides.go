package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "theme":
			cfg.Theme = val
		case "width":
			if w, err := strconv.Atoi(val); err == nil && w > 0 {
				cfg.Width = w
			}
		case "reasoning_expanded":
			cfg.ReasoningExpanded = val == "true" || val == "1"
		case "tool_run_limit":
			if n, err := strconv.Atoi(val); err == nil && n >= 0 {
				cfg.ToolRunLimit = n
			}
		case "highlight":
			cfg.Highlight = val == "true" || val == "1"
		case "transcripts_dir":
			cfg.TranscriptsDir = val
		case "log_path":
			cfg.LogPath = val
		}
	}
	return cfg
}
