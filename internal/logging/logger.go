// Package logging provides the leveled line logger shared by both asset
// tools. Lines have the form
//
//	2006-01-02 15:04:05,000 - INFO: message
//
// and go to standard error, optionally colored, optionally mirrored to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/term"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "2006-01-02 15:04:05,000"

// Level is a log severity. Lines below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the label printed in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Logger writes leveled lines to an output stream and an optional file sink.
// It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	file  *os.File
	level Level
	color bool
	now   func() time.Time
}

// New returns an uncolored logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{out: w, level: level, now: time.Now}
}

// NewLogger builds the logger for a run from cfg: stderr output, DEBUG when
// verbose, colors per cfg.ColorMode, and LogFile opened for append when set.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode, os.Stderr)

	level := LevelInfo
	if cfg.Verbose {
		level = LevelDebug
	}
	l := New(os.Stderr, level)
	l.color = term.Enabled()

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger used when a component is built
// without one: uncolored, stderr, INFO. It is constructed on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, LevelInfo)
	})
	return defaultLogger
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	ts := l.now().Format(TimeFormat)
	label := level.String()
	plain := ts + " - " + label + ": " + text + "\n"
	if l.color {
		_, _ = io.WriteString(l.out, ts+" - "+term.Wrap(levelColor(level), label)+": "+text+"\n")
	} else {
		_, _ = io.WriteString(l.out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

func levelColor(level Level) string {
	switch level {
	case LevelDebug:
		return term.Cyan
	case LevelInfo:
		return term.Blue
	case LevelWarn:
		return term.Yellow
	case LevelError:
		return term.Red
	}
	return ""
}

// Debug logs at DEBUG level (cyan); dropped unless the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.line(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs at WARNING level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(LevelError, fmt.Sprintf(format, args...))
}
