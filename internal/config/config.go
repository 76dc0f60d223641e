package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema.
type Config struct {
	Theme             string `toml:"theme"`
	Width             int    `toml:"width"`
	ReasoningExpanded bool   `toml:"reasoning_expanded"`
	ToolRunLimit      int    `toml:"tool_run_limit"`
	Highlight         bool   `toml:"highlight"`
	TranscriptsDir    string `toml:"transcripts_dir"`
	LogPath           string `toml:"log_path"`
	Source            string `toml:"-"`
}

func Default() Config {
	return Config{
		Theme:        "dark",
		Width:        0, // 0 表示跟随终端宽度
		ToolRunLimit: 6,
		Highlight:    true,
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rill", "config.toml")
}

// DefaultTranscriptsDir 默认回放记录目录。
func DefaultTranscriptsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rill", "transcripts")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

// applyEnv 环境变量优先于文件内容。
func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("RILL_THEME")); env != "" {
		cfg.Theme = env
	}
	if env := strings.TrimSpace(os.Getenv("RILL_WIDTH")); env != "" {
		if w, err := strconv.Atoi(env); err == nil && w > 0 {
			cfg.Width = w
		}
	}
	return cfg
}
