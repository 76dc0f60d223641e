package main

import (
	"fmt"
	"os"

	"rill-cli/internal/config"
	"rill-cli/internal/logger"
	"rill-cli/internal/term"
	"rill-cli/internal/transcript"
)

var log = logger.Named("cli")

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(logger.DefaultLogPath); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "render":
			renderMain(root, rest[1:])
			return
		case "play":
			playMain(root, rest[1:])
			return
		case "import":
			importMain(root, rest[1:])
			return
		case "ls":
			lsMain(root, rest[1:])
			return
		case "config":
			configMain(root, rest[1:])
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
		log.Fatalf("unknown command: %s", rest[0])
	}

	printUsage()
}

func printUsage() {
	fmt.Println(`rill-cli: streaming-safe terminal renderer for model output

Usage:
  rill-cli render [file]        Render a file (or stdin) once
  rill-cli render --follow      Render stdin incrementally as it arrives
  rill-cli play [id]            Replay a saved transcript in the TUI
  rill-cli import [file]        Save a file (or stdin) as a transcript
  rill-cli ls [query]           List saved transcripts
  rill-cli config [show|set|path]   Show or persist configuration

Global flags:
  --config <path>   Config file (default ~/.rill/config.toml)
  --width <n>       Output width (default: config, then 80)
  --theme <name>    Color theme: dark|light
  --plain           Disable styling and syntax highlighting
  -c key=value      Override a config value (repeatable)`)
}

// loadConfig 加载配置并套用全局 flag 与 -c 覆写。
func loadConfig(root rootArgs) config.Config {
	cfg, err := config.Load(root.cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg = config.ApplyKVOverrides(cfg, root.overrides)
	if root.width > 0 {
		cfg.Width = root.width
	}
	if root.theme != "" {
		cfg.Theme = root.theme
	}
	if root.plain {
		cfg.Highlight = false
	}
	return cfg
}

func buildRenderer(cfg config.Config, plain bool) *term.Renderer {
	width := cfg.Width
	if width <= 0 {
		width = 80
	}
	theme := term.NewTheme(cfg.Theme)
	if plain {
		theme = term.Theme{}
	}
	r := term.NewRenderer(width, theme)
	r.Highlight = cfg.Highlight && !plain
	r.ToolRunLimit = cfg.ToolRunLimit
	r.ReasoningExpanded = cfg.ReasoningExpanded
	return r
}

func openStore(cfg config.Config) *transcript.Store {
	if cfg.TranscriptsDir != "" {
		return &transcript.Store{Dir: cfg.TranscriptsDir}
	}
	store, err := transcript.NewDefault()
	if err != nil {
		log.Fatalf("failed to resolve transcripts dir: %v", err)
	}
	return store
}
