package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"rill-cli/internal/transcript"
)

func importMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	var title string
	var chunkSize int
	var delayMs int
	fs.StringVar(&title, "title", "", "Transcript title (default: first non-empty line)")
	fs.IntVar(&chunkSize, "chunk", 64, "Chunk size in runes (0 = single chunk)")
	fs.IntVar(&delayMs, "delay", 30, "Per-chunk delay in milliseconds")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse import args: %v", err)
	}

	var data []byte
	var err error
	if fs.NArg() > 0 {
		data, err = os.ReadFile(fs.Arg(0))
		if err != nil {
			log.Fatalf("failed to read %s: %v", fs.Arg(0), err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
	}
	if len(data) == 0 {
		log.Fatalf("nothing to import")
	}

	cfg := loadConfig(root)
	store := openStore(cfg)
	rec := transcript.NewRecord(title, string(data), chunkSize, delayMs)
	if err := store.Save(rec); err != nil {
		log.Fatalf("failed to save transcript: %v", err)
	}
	fmt.Printf("saved %s (%d chunks)\n", rec.ID, len(rec.Chunks))
}
