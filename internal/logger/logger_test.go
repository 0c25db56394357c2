package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_Levels(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	Setup(&buf, false)
	L().Debug("hidden")
	L().Info("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged without verbose: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("info message missing: %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("timestamp should be stripped: %q", out)
	}

	buf.Reset()
	Setup(&buf, true)
	L().Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message missing with verbose: %q", buf.String())
	}
}

func TestL_DefaultDiscards(t *testing.T) {
	Reset()
	if L() == nil {
		t.Fatal("L() returned nil before Setup")
	}
	// Must not panic.
	L().Warn("nobody hears this")
}
