package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestServiceAttrsSkipsBlanks(t *testing.T) {
	if attrs := serviceAttrs("", ""); len(attrs) != 0 {
		t.Fatalf("expected no attrs, got %+v", attrs)
	}
	attrs := serviceAttrs("nba-player-stats-service", "")
	if len(attrs) != 1 || attrs[0].Key != FieldService {
		t.Fatalf("expected only service attr, got %+v", attrs)
	}
}

func TestNewLoggerTagsServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Service: "nba-player-stats-service", Version: "v1", Output: &buf})
	logger.Info("resolved", FieldMonth, "2024-03")

	out := buf.String()
	for _, want := range []string{"service=nba-player-stats-service", "version=v1", "month=2024-03"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
