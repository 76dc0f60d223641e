package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"rill-cli/internal/logger"
	"rill-cli/internal/term"
)

func renderMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var follow bool
	fs.BoolVar(&follow, "follow", false, "Render stdin incrementally as chunks arrive")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse render args: %v", err)
	}

	cfg := loadConfig(root)
	renderer := buildRenderer(cfg, root.plain)

	if follow {
		followStdin(renderer)
		return
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

	lines := renderer.RenderBuffer(string(data))
	fmt.Println(strings.Join(outputLines(lines, root.plain), "\n"))
}

// followStdin 边读边渲染：每个到达的分片触发一次整体重渲，
// 只重绘从首个变化行开始的尾部。
func followStdin(renderer *term.Renderer) {
	printer := term.NewPrinter(renderer)
	reader := bufio.NewReader(os.Stdin)
	buf := make([]byte, 4096)
	printed := 0
	seq := 0

	logger.StreamLog.PlaybackStarted("stdin", 0)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			logger.StreamLog.ChunkFed("stdin", chunk, seq)
			seq++
			printed = repaint(printed, printer.Append(chunk))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.StreamLog.Error("stdin", err)
			log.Fatalf("read stdin: %v", err)
		}
	}
	logger.StreamLog.PlaybackFinished("stdin", seq)
}

// repaint 将光标移回首个变化行、清掉其后的旧输出并重绘，返回新的总行数。
// 渲染变短时 Lines 为空而 From 减小，仅执行清除。
func repaint(printed int, d term.Delta) int {
	if erase := printed - d.From; erase > 0 {
		fmt.Printf("\x1b[%dA\x1b[0J", erase)
	}
	for _, line := range d.Lines {
		fmt.Println(line)
	}
	return d.From + len(d.Lines)
}

func outputLines(lines []term.Line, plain bool) []string {
	if plain {
		return term.LinesToPlainStrings(lines)
	}
	return term.LinesToStrings(lines)
}
