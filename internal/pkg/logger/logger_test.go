package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"off":     DisabledLevel,
		"info":    InfoLevel,
		"":        InfoLevel,
		"verbose": InfoLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigureWritesJSONAndHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	Info().Msg("hidden")
	facultyLogger := WithField("faculty", "CS")
	facultyLogger.Warn().Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if entry["message"] != "shown" || entry["faculty"] != "CS" || entry["level"] != "warn" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}
