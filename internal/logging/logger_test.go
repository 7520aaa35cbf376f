package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)

	log.Debug("loaded store")
	log.Info("saved store")
	log.Warn("index out of date")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "loaded store") || strings.Contains(out, "saved store") {
		t.Errorf("expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "index out of date") {
		t.Errorf("expected warning in output, got %q", out)
	}
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)

	log.Debug("loaded store")
	_ = log.Sync()

	if !strings.Contains(buf.String(), "DEBUG") {
		t.Errorf("expected DEBUG entry, got %q", buf.String())
	}
}
