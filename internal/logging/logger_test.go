package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestInitializeLevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	path := filepath.Join(t.TempDir(), "pinpad.log")

	if err := InitializeWithOutput("", path); err != nil {
		t.Fatalf("InitializeWithOutput() error = %v", err)
	}
	defer SetLogger(nil)

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}

	Warn("bridge frame rejected", zap.String("remote_addr", "127.0.0.1:1"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "bridge frame rejected") {
		t.Errorf("log file missing message, got: %q", string(data))
	}
}

func TestLogTransitionNeverCarriesDigits(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogTransition("append", "partial", 3)
	LogCompletion("keyboard", 6)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	for _, entry := range entries {
		for key := range entry.ContextMap() {
			if key == "pin" || key == "digits" || key == "value" {
				t.Errorf("entry %q carries secret field %q", entry.Message, key)
			}
		}
	}

	if got := entries[1].ContextMap()["length"]; got != int64(6) {
		t.Errorf("completion length = %v, want 6", got)
	}
}

func TestLogKeyEventRedactsDigits(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	tests := []struct {
		code string
		want string
	}{
		{"7", "digit"},
		{"0", "digit"},
		{"delete", "delete"},
		{"enter", "enter"},
		{"ctrl+x", "ctrl+x"},
	}

	for _, tt := range tests {
		LogKeyEvent("terminal", tt.code, "down", true)
	}

	entries := logs.All()
	if len(entries) != len(tests) {
		t.Fatalf("got %d entries, want %d", len(entries), len(tests))
	}
	for i, tt := range tests {
		if got := entries[i].ContextMap()["code"]; got != tt.want {
			t.Errorf("LogKeyEvent(%q) code = %v, want %q", tt.code, got, tt.want)
		}
	}
}

func TestSuspendTerminalOutput(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	defer SetLogger(nil)

	tests := []struct {
		name       string
		output     string
		wantSilent bool
	}{
		{"stderr is suspended", "stderr", true},
		{"stdout is suspended", "stdout", true},
		{"file keeps logging", "file", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.output
			if out == "file" {
				out = filepath.Join(t.TempDir(), "pinpad.log")
			}
			if err := InitializeWithOutput("debug", out); err != nil {
				t.Fatalf("InitializeWithOutput() error = %v", err)
			}
			if Output() != out {
				t.Fatalf("Output() = %q, want %q", Output(), out)
			}

			restore := SuspendTerminalOutput()
			enabled := GetLogger().Core().Enabled(zapcore.ErrorLevel)
			if enabled == tt.wantSilent {
				t.Errorf("logging enabled while suspended = %v, want %v", enabled, !tt.wantSilent)
			}

			restore()
			if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
				t.Error("logger should be restored after the suspension ends")
			}
			if Output() != out {
				t.Errorf("Output() after restore = %q, want %q", Output(), out)
			}
		})
	}
}

func TestSuspendTerminalOutputWhenSilent(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	restore := SuspendTerminalOutput()
	defer restore()

	if Output() != "" {
		t.Errorf("Output() = %q, want empty for a silent logger", Output())
	}
}
