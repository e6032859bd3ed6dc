package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Logger handles run logging: records go to the console handler and, after
// Init, to a per-run log file as well.
type Logger struct {
	file    *os.File
	mu      sync.Mutex
	level   slog.Level
	console io.Writer
	runID   string
	log     *slog.Logger
}

// NewLogger creates a Logger writing records at level and above to console
func NewLogger(console io.Writer, level string) *Logger {
	l := &Logger{
		level:   ParseLevel(level),
		console: console,
		runID:   uuid.NewString(),
	}
	l.rebuild()
	return l
}

// ParseLevel maps a config level name to a slog level; unknown names mean info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RunID identifies this run in every record
func (l *Logger) RunID() string {
	return l.runID
}

// Init additionally logs to a new file in logDir. The file records every
// level so a run can be reconstructed after the fact.
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("paydeck_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("paydeck_%s_%d.log", dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	l.file = f
	l.rebuild()
	l.log.Info("run started", "file", filename)
	return nil
}

func (l *Logger) rebuild() {
	var handlers []slog.Handler
	if l.console != nil {
		handlers = append(handlers, slog.NewTextHandler(l.console, &slog.HandlerOptions{Level: l.level}))
	}
	if l.file != nil {
		handlers = append(handlers, slog.NewTextHandler(l.file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	l.log = slog.New(fanout(handlers)).With("run", l.runID)
}

// Log writes an info record
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info(message)
}

// Logf writes a formatted info record
func (l *Logger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info(fmt.Sprintf(format, args...))
}

// Debugf writes a formatted debug record
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Debug(fmt.Sprintf(format, args...))
}

// Errorf writes a formatted error record
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Error(fmt.Sprintf(format, args...))
}

// Close closes the log file
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.log.Info("run finished")
		l.file.Close()
		l.file = nil
		l.rebuild()
	}
}
