package main

import "flag"

type rootArgs struct {
	cfgPath   string
	width     int
	theme     string
	plain     bool
	overrides []string
}

func parseRootArgs(args []string) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("rill-cli", flag.ContinueOnError)
	var root rootArgs
	var overrides stringSlice
	fs.StringVar(&root.cfgPath, "config", "", "Path to config file (default ~/.rill/config.toml)")
	fs.IntVar(&root.width, "width", 0, "Output width (0 = use config, then 80)")
	fs.StringVar(&root.theme, "theme", "", "Color theme (dark|light)")
	fs.BoolVar(&root.plain, "plain", false, "Disable styling and syntax highlighting")
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}
	root.overrides = overrides
	return root, fs.Args(), nil
}
