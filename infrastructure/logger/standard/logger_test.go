package standard

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_LevelsAndStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo(&out, &errOut)

	logger.Info("starting up", nil)
	logger.Error("something failed", nil)

	if !strings.Contains(out.String(), "[INFO] starting up") {
		t.Errorf("stdout = %q, want the info line", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] something failed") {
		t.Errorf("stderr = %q, want the error line", errOut.String())
	}
	if strings.Contains(out.String(), "something failed") {
		t.Error("error line leaked to stdout")
	}
}

func TestLogger_RendersFieldsAsJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo(&out, &errOut)

	logger.Warn("photo skipped", map[string]interface{}{"filepath": "a.jpeg"})

	line := out.String()
	if !strings.Contains(line, "[WARN] photo skipped") || !strings.Contains(line, `{"filepath":"a.jpeg"}`) {
		t.Errorf("log line = %q, want level, message and JSON fields", line)
	}
}

func TestLogger_NilFieldsOmitted(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo(&out, &errOut)

	logger.Debug("plain", nil)

	if strings.Contains(out.String(), "{") {
		t.Errorf("log line = %q, want no fields payload", out.String())
	}
}
