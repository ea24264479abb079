package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fixedNow() time.Time {
	return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
}

func TestFileName(t *testing.T) {
	if got := FileName(fixedNow()); got != "scaffold_20261019.log" {
		t.Errorf("FileName() = %q, want %q", got, "scaffold_20261019.log")
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer log.Close()

	log.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
	if log.Path() != "" {
		t.Errorf("Path() = %q, want empty", log.Path())
	}
}

func TestNew_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf, JSON: true})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	log.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("Expected key/value field in output, got: %s", output)
	}
}

func TestNew_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf, Verbose: true})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	log.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", buf.String())
	}
}

func TestNew_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	log.Debug("debug message")

	if strings.Contains(buf.String(), "debug message") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", buf.String())
	}
}

func TestNew_FileAlwaysDebug(t *testing.T) {
	var buf bytes.Buffer
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := New(Options{Console: &buf, Dir: dir, Now: fixedNow})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	log.Debug("quiet detail", "name", "alpha")
	log.Record("NAVIGATE_TO:/tmp/alpha")
	if err := log.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	wantPath := filepath.Join(dir, "scaffold_20261019.log")
	if log.Path() != wantPath {
		t.Errorf("Path() = %q, want %q", log.Path(), wantPath)
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log file has %d lines, want 2:\n%s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "quiet detail" || entry["name"] != "alpha" {
		t.Errorf("unexpected first entry: %v", entry)
	}

	if strings.Contains(buf.String(), "quiet detail") {
		t.Error("debug entry should not reach the non-verbose console")
	}
	if strings.Contains(buf.String(), "NAVIGATE_TO") {
		t.Error("Record should only write to the log file")
	}
}

func TestNew_FileAppends(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 2; i++ {
		log, err := New(Options{Console: &bytes.Buffer{}, Dir: dir, Now: fixedNow})
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		log.Info("run")
		log.Close()
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName(fixedNow())))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if n := strings.Count(string(data), `"msg":"run"`); n != 2 {
		t.Errorf("found %d entries, want 2", n)
	}
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	log.With("component", "test").Info("with test")

	entries := logs.FilterMessage("with test").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].ContextMap()["component"] != "test" {
		t.Errorf("component field = %v, want %q", entries[0].ContextMap()["component"], "test")
	}
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	all := logs.All()
	if len(all) != len(want) {
		t.Fatalf("got %d entries, want %d", len(all), len(want))
	}
	for i, lvl := range want {
		if all[i].Level != lvl {
			t.Errorf("entry %d level = %v, want %v", i, all[i].Level, lvl)
		}
	}
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("discarded")
	if err := log.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
