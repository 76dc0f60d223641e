package main

import (
	"flag"
	"os"
	"time"

	"rill-cli/internal/logger"
	"rill-cli/internal/term"
	"rill-cli/internal/transcript"
	"rill-cli/internal/tui"
)

func playMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	var last bool
	var delayMs int
	fs.BoolVar(&last, "last", false, "Replay the most recent transcript")
	fs.IntVar(&delayMs, "delay", 30, "Default delay between chunks in milliseconds")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse play args: %v", err)
	}

	cfg := loadConfig(root)
	store := openStore(cfg)

	var rec transcript.Record
	var err error
	switch {
	case last || fs.NArg() == 0:
		rec, err = store.Last()
	default:
		// 参数既可以是记录 ID（或前缀），也可以是临时 markdown 文件。
		if data, readErr := os.ReadFile(fs.Arg(0)); readErr == nil {
			rec = transcript.NewRecord("", string(data), 64, delayMs)
		} else {
			rec, err = store.Load(fs.Arg(0))
		}
	}
	if err != nil {
		log.Fatalf("failed to load transcript: %v", err)
	}

	if root.plain {
		playPlain(rec, buildRenderer(cfg, true), time.Duration(delayMs)*time.Millisecond)
		return
	}

	result, err := tui.Run(tui.Options{
		Record:       rec,
		Renderer:     buildRenderer(cfg, false),
		DefaultDelay: time.Duration(delayMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("playback failed: %v", err)
	}
	if !result.Completed {
		log.Infof("playback stopped before the end of %s", rec.ID)
	}
}

// playPlain 在非交互终端按分片节奏重放，复用 follow 的重绘逻辑。
func playPlain(rec transcript.Record, renderer *term.Renderer, defaultDelay time.Duration) {
	printer := term.NewPrinter(renderer)
	printed := 0

	logger.StreamLog.PlaybackStarted(rec.ID, len(rec.Chunks))
	for i, chunk := range rec.Chunks {
		delay := defaultDelay
		if chunk.DelayMs > 0 {
			delay = time.Duration(chunk.DelayMs) * time.Millisecond
		}
		time.Sleep(delay)
		logger.StreamLog.ChunkFed(rec.ID, chunk.Text, i)
		printed = repaint(printed, printer.Append(chunk.Text))
	}
	logger.StreamLog.PlaybackFinished(rec.ID, len(rec.Chunks))
}
