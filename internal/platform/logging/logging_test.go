package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"excalc/internal/platform/logging"
)

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.New("warn", "text", &buf)
	logger.Debug("hidden")
	logger.Warn("shown", "command", "biking")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record must be filtered at warn, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "command=biking") {
		t.Fatalf("expected text record, got %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logging.New("debug", "json", &buf).Debug("exercise recorded", "calories", 250.0)
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "exercise recorded" || record["calories"] != 250.0 {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.New("chatty", "text", &buf)
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info must be filtered by the fallback level, got %q", buf.String())
	}
}
