package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	SetTraceEnabled(false)

	Trace("pane.refresh", map[string]interface{}{"path": "/tmp"})
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTraceWritesJSONEvent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	Trace("job.submit", map[string]interface{}{"op": "copy", "count": 2})

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected json entry, got %q: %v", buf.String(), err)
	}
	if entry["event"] != "job.submit" {
		t.Fatalf("expected event job.submit, got %v", entry["event"])
	}
	if entry["op"] != "copy" {
		t.Fatalf("expected op field, got %v", entry["op"])
	}
}

func TestErrorIgnoresNil(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Error(nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nil error to be skipped, got %q", buf.String())
	}
	Error(errors.New("boom"))
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected error text in log, got %q", buf.String())
	}
}

func TestConfigureCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "app.log")
	Configure(path)
	defer Configure("")

	Errorf("listing failed: %s", "denied")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "listing failed: denied") {
		t.Fatalf("unexpected log contents %q", string(data))
	}
}
