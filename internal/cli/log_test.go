package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/logtrack/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		debug   bool
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, false, true},
		{"debug at info level", log.InfoLevel, true, false},
		{"debug at debug level", log.DebugLevel, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			if tt.debug {
				logger.Debug("test")
			} else {
				logger.Info("test")
			}
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("rendered 2 files")

	out := buf.String()
	if !strings.Contains(out, "rendered 2 files (") {
		t.Errorf("progress output = %q", out)
	}
}

func TestSetLogLevelRegistersHooks(t *testing.T) {
	defer observability.Reset()

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogInfo)
	observability.Cache().OnCacheHit(context.Background(), "scene")
	if buf.Len() != 0 {
		t.Fatalf("hooks registered at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	observability.Cache().OnCacheHit(context.Background(), "scene")
	if !strings.Contains(buf.String(), "cache hit") {
		t.Errorf("debug hooks not registered: %q", buf.String())
	}
}
