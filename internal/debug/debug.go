// Package debug provides opt-in tracing for the parsing and scoring passes.
// Every helper takes the caller's localDebug flag so tracing can be switched
// on for a single address without touching global state. Output goes to the
// global zap logger, which is a no-op until a binary installs one.
package debug

import (
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DebugHeader logs the start of a traced function
func DebugHeader(enabled bool) {
	if enabled {
		zap.S().Infof("=== %s START ===", callerName(2))
	}
}

// DebugFooter logs the end of a traced function
func DebugFooter(enabled bool) {
	if enabled {
		zap.S().Infof("=== %s END ===", callerName(2))
	}
}

// DebugOutput logs a formatted trace line if debugging is enabled
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if enabled {
		zap.S().Infof(format, args...)
	}
}

// DebugTiming measures and logs execution time if debugging is enabled
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "Starting: %s", operation)

	return func() {
		zap.L().Info("Completed", zap.String("operation", operation), zap.Duration("took", time.Since(start)))
	}
}

// callerName returns the short function name skip frames up the stack
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "DEBUG"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "DEBUG"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
