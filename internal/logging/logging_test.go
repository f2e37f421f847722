package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		debug     bool
		wantDebug bool
	}{
		{debug: false, wantDebug: false},
		{debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		logger, err := New(tt.debug)
		if err != nil {
			t.Fatalf("New(%v) error = %v", tt.debug, err)
		}
		if got := logger.Core().Enabled(zapcore.DebugLevel); got != tt.wantDebug {
			t.Errorf("New(%v) debug enabled = %v, want %v", tt.debug, got, tt.wantDebug)
		}
	}
}

func TestInstall(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Install(zap.New(core))

	zap.L().Info("through global")
	restore()
	zap.L().Info("after restore")

	if logs.Len() != 1 || logs.All()[0].Message != "through global" {
		t.Errorf("observed %v", logs.All())
	}
}
