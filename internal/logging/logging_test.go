package logging

import (
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LogLevel(99), "unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestIsDebugEnabledMatchesLevel(t *testing.T) {
	want := GetLevel() <= LevelDebug
	if got := IsDebugEnabled(); got != want {
		t.Errorf("IsDebugEnabled() = %v, level is %s", got, GetLevel())
	}
}

func TestSinkReceivesEntries(t *testing.T) {
	var entries []Entry
	SetSink(func(e Entry) {
		entries = append(entries, e)
	})
	defer SetSink(nil)

	Error("probe failed for %s", "/media/a.mp3")

	if len(entries) != 1 {
		t.Fatalf("expected 1 sink entry, got %d", len(entries))
	}
	if entries[0].Level != "error" {
		t.Errorf("expected level error, got %q", entries[0].Level)
	}
	if entries[0].Message != "probe failed for /media/a.mp3" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
}

func TestSinkDetach(t *testing.T) {
	called := false
	SetSink(func(Entry) { called = true })
	SetSink(nil)

	Warn("should not reach sink")

	if called {
		t.Error("detached sink was invoked")
	}
}
