package main

import (
	"fmt"

	"rill-cli/internal/config"
)

func configMain(root rootArgs, args []string) {
	if len(args) == 0 || args[0] == "show" {
		printConfig(loadConfig(root))
		return
	}
	switch args[0] {
	case "set":
		if len(args) < 2 {
			log.Fatalf("usage: rill-cli config set key=value [key=value ...]")
		}
		cfg, err := config.Load(root.cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = config.ApplyKVOverrides(cfg, args[1:])
		if err := config.Save(root.cfgPath, cfg); err != nil {
			log.Fatalf("failed to save config: %v", err)
		}
		fmt.Printf("saved %s\n", cfg.Source)
	case "path":
		cfg := loadConfig(root)
		fmt.Println(cfg.Source)
	default:
		log.Fatalf("unknown config subcommand: %s (use show, set or path)", args[0])
	}
}

func printConfig(cfg config.Config) {
	fmt.Printf("theme = %q\n", cfg.Theme)
	fmt.Printf("width = %d\n", cfg.Width)
	fmt.Printf("reasoning_expanded = %t\n", cfg.ReasoningExpanded)
	fmt.Printf("tool_run_limit = %d\n", cfg.ToolRunLimit)
	fmt.Printf("highlight = %t\n", cfg.Highlight)
	if cfg.TranscriptsDir != "" {
		fmt.Printf("transcripts_dir = %q\n", cfg.TranscriptsDir)
	}
	if cfg.LogPath != "" {
		fmt.Printf("log_path = %q\n", cfg.LogPath)
	}
}
