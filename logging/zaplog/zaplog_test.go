package zaplog

import (
	"errors"
	"testing"

	"github.com/goliatone/go-gym-records/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Logger{L: zap.New(core)}

	var _ logging.Logger = l

	l.Warn("record fetch failed", logging.Fields{"kind": "users", "error": errors.New("db down")})
	l.Debug("rebuilt", nil)

	if logs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", logs.Len())
	}

	entry := logs.FilterMessage("record fetch failed").All()[0]
	if entry.Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", entry.Level)
	}

	ctx := entry.ContextMap()
	if ctx["kind"] != "users" {
		t.Errorf("expected kind field, got %v", ctx["kind"])
	}
	if ctx["error"] != "db down" {
		t.Errorf("expected error field, got %v", ctx["error"])
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
