package debug

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func traced(enabled bool) {
	DebugHeader(enabled)
	defer DebugFooter(enabled)
	DebugOutput(enabled, "value=%d", 7)
}

func TestTracingGated(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	traced(false)
	if logs.Len() != 0 {
		t.Fatalf("disabled tracing logged %d entries", logs.Len())
	}

	traced(true)
	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if !strings.Contains(entries[0].Message, "debug.traced START") {
		t.Errorf("header = %q", entries[0].Message)
	}
	if entries[1].Message != "value=7" {
		t.Errorf("output = %q", entries[1].Message)
	}
	if !strings.Contains(entries[2].Message, "debug.traced END") {
		t.Errorf("footer = %q", entries[2].Message)
	}
}

func TestDebugTiming(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	DebugTiming(false, "noop")()
	DebugTiming(true, "work")()

	if logs.Len() != 2 {
		t.Fatalf("got %d entries, want 2", logs.Len())
	}
	if logs.All()[1].ContextMap()["operation"] != "work" {
		t.Errorf("timing fields = %v", logs.All()[1].ContextMap())
	}
}
