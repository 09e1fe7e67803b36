package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComponentBeforeSetupDiscards(t *testing.T) {
	// Must not panic or write anywhere.
	Component("early").Info("dropped")
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	if err := Setup(path, "debug"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	Component("shell").WithField("page", "Page 1").Info("dispatched")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "dispatched") || !strings.Contains(out, "component=shell") {
		t.Fatalf("log line missing fields: %q", out)
	}
}

func TestSetupBadLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	if err := Setup(path, "chatty"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	Component("x").Info("still logs")
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "still logs") {
		t.Fatalf("info should log at fallback level")
	}
}
