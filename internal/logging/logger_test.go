package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewConsoleWritesRecord(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("resolving word list", "path", "/usr/share/dict/words")

	line := buf.String()
	if !strings.Contains(line, "DEBUG resolving word list") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "path=/usr/share/dict/words") {
		t.Fatalf("missing attribute in console line: %q", line)
	}
}

func TestNewConsoleFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("debug record leaked at info level: %q", buf.String())
	}

	logger.Info("should appear")
	if !strings.Contains(buf.String(), "INFO should appear") {
		t.Fatalf("info record missing: %q", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("loaded", "words", 12)
	if !strings.Contains(buf.String(), `"msg":"loaded"`) {
		t.Fatalf("expected JSON record, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithAttrsCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.With("run", "batch").Info("started")
	if !strings.Contains(buf.String(), "run=batch") {
		t.Fatalf("bound attribute missing: %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("discarded")
}
