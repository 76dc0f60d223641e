package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// StreamLogger 负责输出回放与跟读过程中的分片级日志。
type StreamLogger interface {
	PlaybackStarted(source string, chunks int)
	ChunkFed(source string, chunk string, index int)
	PlaybackFinished(source string, chunks int)
	Error(source string, err error)
}

// StreamLog 是全局唯一的流式日志器实例。
var StreamLog StreamLogger = NewStreamLogger(nil)

// SetGlobalStreamLogger 覆盖全局流式日志实例，传入 nil 将重置为默认实现。
func SetGlobalStreamLogger(l StreamLogger) {
	if l == nil {
		l = NewStreamLogger(nil)
	}
	StreamLog = l
}

// StdStreamLogger 使用 logrus 输出日志。
type StdStreamLogger struct {
	logger *logrus.Entry
}

// NewStreamLogger 构造默认的流式日志记录器。
func NewStreamLogger(l *Logger) *StdStreamLogger {
	if l == nil {
		l = root()
	}
	l.SetFormatter(PlainFormatter{})
	l.SetReportCaller(true)
	return &StdStreamLogger{logger: logrus.NewEntry(l).WithField("component", "stream")}
}

// PlaybackStarted 记录一次回放的开始。
func (l *StdStreamLogger) PlaybackStarted(source string, chunks int) {
	l.printf(logrus.InfoLevel, "-> playback source=%s chunks=%d", source, chunks)
}

// ChunkFed 记录喂入渲染管线的单个分片。
func (l *StdStreamLogger) ChunkFed(source string, chunk string, index int) {
	l.printf(logrus.DebugLevel, "<- chunk source=%s seq=%d text=%s", source, index, sanitize(chunk))
}

// PlaybackFinished 记录回放完成。
func (l *StdStreamLogger) PlaybackFinished(source string, chunks int) {
	l.printf(logrus.InfoLevel, "<- playback done source=%s chunks=%d", source, chunks)
}

// Error 记录回放错误。
func (l *StdStreamLogger) Error(source string, err error) {
	l.printf(logrus.ErrorLevel, "!! error source=%s err=%v", source, err)
}

// NoopStreamLogger 忽略所有日志输出。
type NoopStreamLogger struct{}

func (NoopStreamLogger) PlaybackStarted(source string, chunks int)       {}
func (NoopStreamLogger) ChunkFed(source string, chunk string, index int) {}
func (NoopStreamLogger) PlaybackFinished(source string, chunks int)      {}
func (NoopStreamLogger) Error(source string, err error)                  {}

func (l *StdStreamLogger) printf(level logrus.Level, format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	if !l.logger.Logger.IsLevelEnabled(level) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	caller := findCaller()
	entry := l.logger
	if caller != "" {
		entry = entry.WithField("caller", caller)
	}
	entry.Log(level, msg)
}

func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, "\r", `\r`)
	return text
}

func findCaller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !isStreamLoggerFrame(frame.File) {
			return fmt.Sprintf("%s:%d", shortenFilePath(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return ""
}

// isStreamLoggerFrame 只匹配本包的 stream.go，调用方自己的 stream.go 不受影响。
func isStreamLoggerFrame(file string) bool {
	return strings.HasSuffix(filepath.ToSlash(file), "internal/logger/stream.go")
}
