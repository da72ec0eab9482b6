package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Config describes how the diagnostic logger should behave.
//
// The registration helper reserves stdout for the instruction transcript, so
// the zero value logs text at info level to stderr.
type Config struct {
	Level       string
	Format      string
	OutputPaths []string
}

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
	closers       []io.Closer
)

// Init configures the global logger. Calling it again replaces the previous
// logger and closes any files it opened.
func Init(cfg Config) error {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	mu.Lock()
	defer mu.Unlock()

	writer, opened, err := buildWriter(cfg.OutputPaths)
	if err != nil {
		return err
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	err = closeAll()
	defaultLogger = slog.New(handler)
	closers = opened
	return err
}

func buildWriter(outputs []string) (io.Writer, []io.Closer, error) {
	if len(outputs) == 0 {
		return os.Stderr, nil, nil
	}
	writers := make([]io.Writer, 0, len(outputs))
	var opened []io.Closer
	for _, out := range outputs {
		writer, closer, err := openWriter(out)
		if err != nil {
			for _, c := range opened {
				_ = c.Close()
			}
			return nil, nil, err
		}
		if closer != nil {
			opened = append(opened, closer)
		}
		writers = append(writers, writer)
	}
	if len(writers) == 1 {
		return writers[0], opened, nil
	}
	return io.MultiWriter(writers...), opened, nil
}

func openWriter(path string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(path) {
	case "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	default:
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		return file, file, nil
	}
}

func parseLevel(level string) slog.Level {
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

// L returns the structured logger instance.
func L() *slog.Logger {
	mu.Lock()
	l := defaultLogger
	mu.Unlock()
	if l != nil {
		return l
	}
	_ = Init(Config{})
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

// Named returns a child logger tagged with the component name.
func Named(name string) *slog.Logger {
	return L().With("component", name)
}

// WithRunID returns a logger tagged with a fresh run identifier along with
// the identifier itself.
func WithRunID(l *slog.Logger) (*slog.Logger, string) {
	if l == nil {
		l = L()
	}
	id := uuid.NewString()
	return l.With("run_id", id), id
}

// Sync closes any log files opened by Init.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	return closeAll()
}

func closeAll() error {
	var err error
	for _, closer := range closers {
		err = errors.Join(err, closer.Close())
	}
	closers = nil
	return err
}
