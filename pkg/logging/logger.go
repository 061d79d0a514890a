// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging builds the process logger for crystalline tools.
//
// A Logger fans slog records out to at most two sinks: human-readable
// text on stderr and JSON lines in a dated file under the configured
// directory. Either sink can be switched off, and a Logger with no
// sinks swallows records, so library code can log unconditionally and
// let the caller decide where the output lands.
//
//	log := logging.New(logging.Config{
//	    Level:   logging.LevelDebug,
//	    LogDir:  "~/.crystalline/logs",
//	    Service: "crystalline",
//	})
//	defer log.Close()
//	log.Info("cache warmed", "primes", 1000)
//
// # Thread Safety
//
// Logger is safe for concurrent use. Close belongs to whoever called
// New; children made with With share the file sink and must not close
// it.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// =============================================================================
// Levels
// =============================================================================

// Level is the minimum severity a record needs to be emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the conventional upper-case name, or "UNKNOWN" for
// values outside the defined range.
func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps a config string to a Level, case-insensitively.
// Unrecognized input falls back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// Construction
// =============================================================================

// Config selects the sinks and the severity floor.
type Config struct {
	// Level is the minimum severity to emit. The zero value is
	// LevelDebug; callers normally set LevelInfo.
	Level Level

	// LogDir enables the JSON file sink. A leading ~ is expanded
	// ("~/.crystalline/logs"); empty disables the sink.
	LogDir string

	// Service names the emitting tool. It becomes an attribute on
	// every record and the log file prefix. Empty means "crystalline".
	Service string

	// Quiet drops the stderr sink, leaving only the file (if any).
	Quiet bool
}

// Logger is a leveled structured logger. Construct with New or
// Default; the zero value is not usable.
type Logger struct {
	sl   *slog.Logger
	file *os.File
}

// New builds a Logger from cfg. A file sink that cannot be opened is
// reported once on stderr and skipped; New never fails.
func New(cfg Config) *Logger {
	service := cfg.Service
	if service == "" {
		service = "crystalline"
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}

	var sinks []slog.Handler
	if !cfg.Quiet {
		sinks = append(sinks, slog.NewTextHandler(os.Stderr, opts))
	}
	var file *os.File
	if dir := expandHome(cfg.LogDir); dir != "" {
		f, err := openLogFile(dir, service)
		if err == nil {
			file = f
			sinks = append(sinks, slog.NewJSONHandler(f, opts))
		} else if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "logging: file sink disabled: %v\n", err)
		}
	}

	var h slog.Handler
	switch len(sinks) {
	case 0:
		h = slog.NewTextHandler(io.Discard, opts)
	case 1:
		h = sinks[0]
	default:
		h = fanout(sinks)
	}
	return &Logger{
		sl:   slog.New(h).With("service", service),
		file: file,
	}
}

// Default returns a stderr-only Logger at Info level for code that
// was not handed one.
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "crystalline"})
}

// openLogFile opens, appending, the dated log file for one service:
// "{service}_{YYYY-MM-DD}.log".
func openLogFile(dir, service string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// =============================================================================
// Logger methods
// =============================================================================

func (l *Logger) Debug(msg string, args ...any) { l.sl.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.sl.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.sl.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.sl.Error(msg, args...) }

// With returns a child Logger whose records carry the extra
// attributes. The child shares the parent's file sink.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sl: l.sl.With(args...), file: l.file}
}

// Slog exposes the underlying slog.Logger for libraries that take one
// directly.
func (l *Logger) Slog() *slog.Logger {
	return l.sl
}

// Close flushes and closes the file sink. Safe on loggers without
// one; returns the first error.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		l.file.Close()
		return fmt.Errorf("sync log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// =============================================================================
// Fanout handler
// =============================================================================

// fanout delivers each record to every sink that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
