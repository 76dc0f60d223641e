package logger

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter_FieldSkipping(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name    string
		data    logrus.Fields
		message string
		want    string
	}{
		{
			name: "component and caller promoted",
			data: logrus.Fields{
				"component": "stream",
				"caller":    "x.go:1",
				"seq":       3,
				"source":    "demo.json",
			},
			message: "chunk fed",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [stream] chunk fed seq=3 source=demo.json\n",
		},
		{
			name: "no extra fields",
			data: logrus.Fields{
				"component": "stream",
				"caller":    "x.go:1",
			},
			message: "hello",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [stream] hello\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: tc.message,
				Data:    tc.data,
			}
			out, err := (PlainFormatter{}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got := string(out); got != tc.want {
				t.Fatalf("unexpected format:\nwant: %q\ngot:  %q", tc.want, got)
			}
		})
	}
}

func TestIsStreamLoggerFrame(t *testing.T) {
	cases := []struct {
		file string
		want bool
	}{
		{"/home/u/rill-cli/internal/logger/stream.go", true},
		{"/home/u/rill-cli/internal/playback/stream.go", false},
		{"/home/u/rill-cli/cmd/rill-cli/render.go", false},
	}
	for _, tc := range cases {
		if got := isStreamLoggerFrame(tc.file); got != tc.want {
			t.Fatalf("isStreamLoggerFrame(%q) = %t, want %t", tc.file, got, tc.want)
		}
	}
}

func TestShortenFilePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/home/u/rill-cli/internal/term/printer.go", "internal/term/printer.go"},
		{"/home/u/rill-cli/cmd/rill-cli/main.go", "cmd/rill-cli/main.go"},
		{"/tmp/other/file.go", "file.go"},
	}
	for _, tc := range cases {
		if got := shortenFilePath(tc.in); got != tc.want {
			t.Fatalf("shortenFilePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
