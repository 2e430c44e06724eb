// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/lintsync/internal/ui/output"
	"go.trai.ch/zerr"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log formats.
const (
	FormatAuto   = "auto"
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

const (
	debugLogMaxSizeMB  = 10
	debugLogMaxBackups = 3
	debugLogMaxAgeDays = 28
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	level    *slog.LevelVar
	output   io.Writer
	jsonMode bool
	file     io.WriteCloser
}

// New creates a Logger writing pretty lines to stderr at info level.
func New() *Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: os.Stderr,
	}
	l.rebuild()
	return l
}

// Configure applies the log configuration: format, level and the optional debug file.
func (l *Logger) Configure(cfg domain.LogConfig) error {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "log_level", cfg.Level)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.level.Set(level)
	switch cfg.Format {
	case FormatJSON:
		l.jsonMode = true
	case FormatPretty:
		l.jsonMode = false
	default:
		l.jsonMode = !output.IsTerminal(l.output)
	}

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
	if cfg.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    debugLogMaxSizeMB,
			MaxBackups: debugLogMaxBackups,
			MaxAge:     debugLogMaxAgeDays,
		}
	}

	l.rebuild()
	return nil
}

// SetOutput updates the terminal destination. A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty terminal output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// Close releases the debug log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.rebuild()
	return err
}

// rebuild replaces the handler chain. Callers hold mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}

	if l.file != nil {
		handler = fanout{
			handler,
			slog.NewJSONHandler(l.file, &slog.HandlerOptions{Level: slog.LevelDebug}),
		}
	}
	l.logger = slog.New(handler)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs err. Pretty output renders the whole chain with its metadata;
// JSON output carries the metadata as fields.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		zerr.Log(context.Background(), l.logger, err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
