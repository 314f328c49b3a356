// Package logger is a small leveled logger over the standard log package.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Level is the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelPrefixes = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Logger writes leveled, caller-annotated lines. A nil *Logger discards
// everything, so components can take one optionally.
type Logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
}

// New returns a logger writing to w at the named level.
func New(level string, w io.Writer) *Logger {
	return &Logger{
		level:  ParseLevel(level),
		logger: log.New(w, "", log.LstdFlags),
	}
}

// NewStderr returns a logger writing to standard error.
func NewStderr(level string) *Logger { return New(level, os.Stderr) }

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	min := l.level
	l.mu.Unlock()
	if level < min {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	l.logger.Printf("[%s] %s:%d: %s", levelPrefixes[level], filepath.Base(file), line, fmt.Sprintf(format, v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.logf(INFO, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.logf(WARN, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.level = ParseLevel(level)
	l.mu.Unlock()
}
