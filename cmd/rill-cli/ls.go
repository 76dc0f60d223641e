package main

import (
	"flag"
	"fmt"
	"strings"
)

func lsMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse ls args: %v", err)
	}
	query := strings.Join(fs.Args(), " ")

	cfg := loadConfig(root)
	store := openStore(cfg)
	recs, err := store.List(query)
	if err != nil {
		log.Fatalf("failed to list transcripts: %v", err)
	}
	if len(recs) == 0 {
		fmt.Println("no transcripts")
		return
	}
	for _, rec := range recs {
		id := rec.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("%s  %s  %3d chunks  %s\n", id, rec.CreatedAt.Local().Format("2006-01-02 15:04"), len(rec.Chunks), rec.Title)
	}
}
