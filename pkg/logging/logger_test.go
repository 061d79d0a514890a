// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" debug ", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"loud", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(-1), "UNKNOWN"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

// readLogFile returns the contents of the dated log file a test
// logger wrote under dir.
func readLogFile(t *testing.T, dir, service string) []byte {
	t.Helper()
	name := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return data
}

func TestFileSinkWritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	log := New(Config{
		Level:   LevelInfo,
		LogDir:  dir,
		Service: "crystalline",
		Quiet:   true,
	})
	log.Info("cache warmed", "primes", 1000)
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := bytes.Split(bytes.TrimSpace(readLogFile(t, dir, "crystalline")), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	var record map[string]any
	if err := json.Unmarshal(lines[0], &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["msg"] != "cache warmed" {
		t.Errorf("msg = %v, want %q", record["msg"], "cache warmed")
	}
	if record["service"] != "crystalline" {
		t.Errorf("service = %v, want %q", record["service"], "crystalline")
	}
	if record["primes"] != float64(1000) {
		t.Errorf("primes = %v, want 1000", record["primes"])
	}
}

func TestServiceDefaultsToCrystalline(t *testing.T) {
	dir := t.TempDir()
	log := New(Config{LogDir: dir, Quiet: true})
	log.Info("hello")
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The default service names the file and stamps the records.
	data := readLogFile(t, dir, "crystalline")
	if !bytes.Contains(data, []byte(`"service":"crystalline"`)) {
		t.Errorf("record missing default service attribute: %s", data)
	}
}

func TestLevelFiltersFileSink(t *testing.T) {
	dir := t.TempDir()
	log := New(Config{
		Level:  LevelWarn,
		LogDir: dir,
		Quiet:  true,
	})
	log.Debug("dropped debug")
	log.Info("dropped info")
	log.Warn("kept warn")
	log.Error("kept error")
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data := readLogFile(t, dir, "crystalline")
	for _, absent := range []string{"dropped debug", "dropped info"} {
		if bytes.Contains(data, []byte(absent)) {
			t.Errorf("record %q should have been filtered", absent)
		}
	}
	for _, present := range []string{"kept warn", "kept error"} {
		if !bytes.Contains(data, []byte(present)) {
			t.Errorf("record %q missing from file", present)
		}
	}
}

func TestWithAddsAttributesAndSharesFile(t *testing.T) {
	dir := t.TempDir()
	parent := New(Config{LogDir: dir, Quiet: true})
	child := parent.With("run_id", "r-123")

	if child.file != parent.file {
		t.Fatal("child must share the parent's file sink")
	}

	parent.Info("from parent")
	child.Info("from child")
	if err := parent.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := bytes.Split(bytes.TrimSpace(readLogFile(t, dir, "crystalline")), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if bytes.Contains(lines[0], []byte("r-123")) {
		t.Error("parent record must not carry the child's attribute")
	}
	if !bytes.Contains(lines[1], []byte(`"run_id":"r-123"`)) {
		t.Errorf("child record missing run_id: %s", lines[1])
	}
}

func TestQuietWithoutFileSwallowsRecords(t *testing.T) {
	log := New(Config{Quiet: true})
	// No sinks configured; logging must still be safe.
	log.Debug("a")
	log.Info("b", "k", 1)
	log.Error("c")
	if err := log.Close(); err != nil {
		t.Errorf("Close on fileless logger: %v", err)
	}
}

func TestUnwritableLogDirIsSkipped(t *testing.T) {
	// A regular file in LogDir's place makes MkdirAll fail; New must
	// still return a working logger.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "occupied")
	if err := os.WriteFile(blocker, []byte("x"), 0640); err != nil {
		t.Fatal(err)
	}
	log := New(Config{LogDir: blocker, Quiet: true})
	if log.file != nil {
		t.Error("file sink should be disabled when the directory cannot be created")
	}
	log.Info("still works")
	if err := log.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDefaultLoggerLevel(t *testing.T) {
	log := Default()
	ctx := context.Background()
	if log.Slog().Enabled(ctx, slog.LevelDebug) {
		t.Error("Default must filter Debug")
	}
	if !log.Slog().Enabled(ctx, slog.LevelInfo) {
		t.Error("Default must pass Info")
	}
}

func TestSlogExposesUnderlyingLogger(t *testing.T) {
	log := New(Config{Quiet: true})
	if log.Slog() == nil {
		t.Fatal("Slog returned nil")
	}
	// Libraries taking a *slog.Logger log through the same sinks.
	log.Slog().Info("via slog")
}

func TestCloseIsIdempotentWithoutFile(t *testing.T) {
	log := New(Config{Quiet: true})
	if err := log.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	tests := []struct {
		in   string
		want string
	}{
		{"~/.crystalline/logs", filepath.Join(home, ".crystalline/logs")},
		{"~", home},
		{"/var/log/crystalline", "/var/log/crystalline"},
		{"relative/logs", "relative/logs"},
		{"~user/logs", "~user/logs"}, // only a bare leading ~ expands
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFanoutRespectsPerSinkLevels(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	f := fanout{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	log := slog.New(f)
	log.Debug("debug only")
	log.Warn("both sinks")

	if !strings.Contains(debugBuf.String(), "debug only") {
		t.Error("debug sink missed its record")
	}
	if strings.Contains(warnBuf.String(), "debug only") {
		t.Error("warn sink must filter debug records")
	}
	for name, buf := range map[string]*bytes.Buffer{"debug": &debugBuf, "warn": &warnBuf} {
		if !strings.Contains(buf.String(), "both sinks") {
			t.Errorf("%s sink missed the warn record", name)
		}
	}
}

func TestFanoutEnabled(t *testing.T) {
	f := fanout{
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	ctx := context.Background()
	if f.Enabled(ctx, slog.LevelInfo) {
		t.Error("no sink accepts Info")
	}
	if !f.Enabled(ctx, slog.LevelWarn) {
		t.Error("the warn sink accepts Warn")
	}
}

func TestFanoutWithAttrsReachesAllSinks(t *testing.T) {
	var a, b bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	f := fanout{slog.NewTextHandler(&a, opts), slog.NewJSONHandler(&b, opts)}
	log := slog.New(f.WithAttrs([]slog.Attr{slog.String("component", "cache")}))
	log.Info("tagged")

	for name, buf := range map[string]*bytes.Buffer{"text": &a, "json": &b} {
		if !strings.Contains(buf.String(), "cache") {
			t.Errorf("%s sink missing the shared attribute", name)
		}
	}
}

func TestConcurrentLogging(t *testing.T) {
	dir := t.TempDir()
	log := New(Config{LogDir: dir, Quiet: true})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				log.Info("concurrent", "worker", n, "seq", j)
			}
		}(i)
	}
	wg.Wait()
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Every line must still be a complete JSON record.
	lines := bytes.Split(bytes.TrimSpace(readLogFile(t, dir, "crystalline")), []byte("\n"))
	if len(lines) != 200 {
		t.Fatalf("got %d lines, want 200", len(lines))
	}
	for i, line := range lines {
		var record map[string]any
		if err := json.Unmarshal(line, &record); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
	}
}
