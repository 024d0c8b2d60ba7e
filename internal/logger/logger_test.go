package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWritesServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", ServiceName: "devapi", Output: &buf}).Named("db")
	log.Info().Str("path", "x.db").Msg("opened")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["service"] != "devapi" || line["component"] != "db" || line["message"] != "opened" {
		t.Errorf("unexpected fields: %v", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		wantOut bool
	}{
		{"error", false},
		{"info", true},
		{"", true},
		{"not-a-level", true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		New(Config{Level: tt.level, Output: &buf}).Info().Msg("hello")
		if got := buf.Len() > 0; got != tt.wantOut {
			t.Errorf("level %q: output = %v, want %v", tt.level, got, tt.wantOut)
		}
	}
}
