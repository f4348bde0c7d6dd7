package logrus

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLogger_EmitsJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Info("photo captured", map[string]interface{}{"filename": "1700000000000.jpeg"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "photo captured" {
		t.Errorf("msg = %v, want 'photo captured'", entry["msg"])
	}
	if entry["filename"] != "1700000000000.jpeg" {
		t.Errorf("filename = %v, want the field value", entry["filename"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
}

func TestLogger_NilFieldsAccepted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Error("boom", nil)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
}
