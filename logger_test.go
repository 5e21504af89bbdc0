// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
)

// captureLog redirects the standard logger during a test and returns the
// captured output.
func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	prevFlags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(prev)
		log.SetFlags(prevFlags)
	}()
	fn()
	return buf.String()
}

// TestDefaultLoggerLevels tests level filtering
func TestDefaultLoggerLevels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		level     LogLevel
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
		wantError bool
	}{
		{"debug level", LogLevelDebug, true, true, true, true},
		{"info level", LogLevelInfo, false, true, true, true},
		{"warn level", LogLevelWarn, false, false, true, true},
		{"error level", LogLevelError, false, false, false, true},
		{"none level", LogLevelNone, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewDefaultLogger(tt.level)
			out := captureLog(t, func() {
				logger.Debug(ctx, "debug msg")
				logger.Info(ctx, "info msg")
				logger.Warn(ctx, "warn msg")
				logger.Error(ctx, "error msg")
			})

			checks := []struct {
				marker string
				want   bool
			}{
				{"[DEBUG] debug msg", tt.wantDebug},
				{"[INFO] info msg", tt.wantInfo},
				{"[WARN] warn msg", tt.wantWarn},
				{"[ERROR] error msg", tt.wantError},
			}
			for _, c := range checks {
				got := strings.Contains(out, c.marker)
				if got != c.want {
					t.Errorf("output contains %q = %v, want %v", c.marker, got, c.want)
				}
			}
		})
	}
}

// TestDefaultLoggerKeyValues tests key=value formatting
func TestDefaultLoggerKeyValues(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo)
	out := captureLog(t, func() {
		logger.Info(context.Background(), "request sent", "attempt", 2, "url", "http://robot.local/move/init")
	})

	if !strings.Contains(out, "attempt=2") {
		t.Errorf("output missing attempt=2: %q", out)
	}
	if !strings.Contains(out, "url=http://robot.local/move/init") {
		t.Errorf("output missing url pair: %q", out)
	}
}

// TestDefaultLoggerOddKeyValues tests the missing-value marker
func TestDefaultLoggerOddKeyValues(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo)
	out := captureLog(t, func() {
		logger.Info(context.Background(), "odd pairs", "orphan")
	})
	if !strings.Contains(out, "orphan=<MISSING>") {
		t.Errorf("output missing <MISSING> marker: %q", out)
	}
}

// TestSanitizeLogValue tests control character handling and truncation
func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"newline replaced", "line1\nline2", "line1 line2"},
		{"carriage return replaced", "a\rb", "a b"},
		{"tab replaced", "a\tb", "a b"},
		{"escape replaced", "a\x1bb", "a.b"},
		{"plain value unchanged", "plain", "plain"},
		{"non-string formatted", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSanitizeLogValueTruncation tests the length cap
func TestSanitizeLogValueTruncation(t *testing.T) {
	long := strings.Repeat("x", MaxLogValueLength+100)
	got := sanitizeLogValue(long)
	if !strings.HasSuffix(got, "...[TRUNCATED]") {
		t.Errorf("long value not truncated: len=%d", len(got))
	}
	if len(got) != MaxLogValueLength+len("...[TRUNCATED]") {
		t.Errorf("truncated length = %d, want %d", len(got), MaxLogValueLength+len("...[TRUNCATED]"))
	}
}

// TestLogLevelString tests the LogLevel string representation
func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevelNone, "NONE"},
		{LogLevel(99), "UNKNOWN(99)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestNoOpLogger tests that the no-op logger emits nothing
func TestNoOpLogger(t *testing.T) {
	logger := &NoOpLogger{}
	out := captureLog(t, func() {
		ctx := context.Background()
		logger.Debug(ctx, "a")
		logger.Info(ctx, "b")
		logger.Warn(ctx, "c")
		logger.Error(ctx, "d")
	})
	if out != "" {
		t.Errorf("NoOpLogger produced output: %q", out)
	}
}
