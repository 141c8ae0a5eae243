package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debug("fetching template", zap.String("source", "kculz/greycodejs"))
	_ = log.Sync()

	out := buf.String()
	if !strings.Contains(out, "DEBUG") {
		t.Errorf("expected DEBUG level in output, got %q", out)
	}
	if !strings.Contains(out, "kculz/greycodejs") {
		t.Errorf("expected field value in output, got %q", out)
	}
}

func TestNewQuiet(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Error("also hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
