// Package logger is a small leveled logger for the driver and its cmd/
// programs. The core cpu package never imports it; it exists purely so the
// step loop, trap detector, and halts have somewhere better to report to
// than scattered log.Printf calls.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelInfo
	LevelStep
)

// Logger writes timestamped, leveled lines to an io.Writer. Step-level
// tracing (one line per instruction) is gated separately from Info/Error so
// a long-running ROM doesn't have to pay for fmt.Sprintf on every
// instruction when step tracing isn't wanted.
type Logger struct {
	level  Level
	writer io.Writer
}

// New returns a Logger writing to w at the given level.
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{level: level, writer: w}
}

func (l *Logger) log(tag, format string, args ...interface{}) {
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.writer, "[%s] %s: %s\n", ts, tag, fmt.Sprintf(format, args...))
}

func (l *Logger) Step(format string, args ...interface{}) {
	if l.level >= LevelStep {
		l.log("STEP", format, args...)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		l.log("INFO", format, args...)
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LevelError {
		l.log("ERROR", format, args...)
	}
}

// LevelFromString parses the -trace flag's value. An unrecognized value
// falls back to LevelInfo, matching yoshiomiyamae-gones' GetLogLevelFromString.
func LevelFromString(s string) Level {
	switch s {
	case "off":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "step":
		return LevelStep
	default:
		return LevelInfo
	}
}
