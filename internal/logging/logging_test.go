// Package logging provides tests for logger construction.
package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"loud", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Error("json")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("logfmt")
	}
	if ParseFormatter("text") != log.TextFormatter || ParseFormatter("") != log.TextFormatter {
		t.Error("text")
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", "path", "tasks.json")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=tasks.json") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestOpenFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Open(Options{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Close()

	if logger.Session == "" {
		t.Fatal("expected session id")
	}
	logger.Info("saved tasks", "tasks", 2)

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "saved tasks" {
		t.Errorf("msg: %v", line["msg"])
	}
	if line["session"] != logger.Session {
		t.Errorf("session: got %v, want %s", line["session"], logger.Session)
	}
}

func TestOpenNilFallbackDiscards(t *testing.T) {
	logger, err := Open(Options{Level: "debug"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	logger.Error("goes nowhere")
	if err := logger.Close(); err != nil {
		t.Errorf("Close without file: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "todolist.log")
	var fallback bytes.Buffer

	for i := 0; i < 2; i++ {
		logger, err := Open(Options{Level: "info", File: path}, &fallback)
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("session started")
		if err := logger.Close(); err != nil {
			t.Fatal(err)
		}
	}

	if fallback.Len() != 0 {
		t.Errorf("fallback should be unused when a file is set: %q", fallback.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "session started"); got != 2 {
		t.Errorf("expected appended lines from both sessions, got %d in %q", got, data)
	}
}

func TestOpenFileError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(Options{File: filepath.Join(blocker, "todolist.log")}, nil); err == nil {
		t.Error("expected error when the log directory is a file")
	}
}

func TestNilLoggerClose(t *testing.T) {
	var l *Logger
	if err := l.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
