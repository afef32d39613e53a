package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	// output is the stream or file the current logger writes to; empty when silent
	output string
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PINPAD_LOG_LEVEL"

// DefaultOutput is where log lines go when no output path is given.
// Completed PINs go to stdout, so logs never share it.
const DefaultOutput = "stderr"

// Initialize creates a new logger with the specified level writing to stderr.
// If level is empty, it checks PINPAD_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithOutput(level, "")
}

// InitializeWithOutput is Initialize with an explicit output path.
// An empty output uses DefaultOutput; any other value is passed to zap as
// a file path (or "stdout"/"stderr").
func InitializeWithOutput(level, output string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		output = ""
		return nil
	}

	if output == "" {
		output = DefaultOutput
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	// Colour codes only make sense on a terminal stream
	if output == "stdout" || output == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	output = config.OutputPaths[0]

	return nil
}

// Output returns where the current logger writes, or "" when it is silent
// or was installed with SetLogger.
func Output() string { return output }

// SuspendTerminalOutput swaps a logger that writes to stdout or stderr for a
// no-op one until the returned func is called. Full-screen views call it so
// log lines do not tear their frame. File loggers are left running.
func SuspendTerminalOutput() (restore func()) {
	if output != "stdout" && output != "stderr" {
		return func() {}
	}
	prev, prevOutput := logger, output
	logger, output = zap.NewNop(), ""
	return func() {
		logger, output = prev, prevOutput
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer
// cores to assert on emitted records.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	output = ""
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogKeyEvent logs a key event delivered to the widget.
// Digit codes are recorded as "digit".
func LogKeyEvent(source, code, action string, handled bool) {
	if len(code) == 1 && code[0] >= '0' && code[0] <= '9' {
		code = "digit"
	}
	Debug("Key event",
		zap.String("source", source),
		zap.String("code", code),
		zap.String("action", action),
		zap.Bool("handled", handled),
	)
}

// LogTransition logs an accepted entry state transition.
// Only the entry length is recorded, never the digits.
func LogTransition(op string, phase string, length int) {
	Debug("Entry transition",
		zap.String("op", op),
		zap.String("phase", phase),
		zap.Int("length", length),
	)
}

// LogCompletion logs a completion notification
func LogCompletion(source string, length int) {
	Info("PIN entry complete",
		zap.String("source", source),
		zap.Int("length", length),
	)
}

// LogConnection logs a remote keypad connection event
func LogConnection(remoteAddr string, event string) {
	Info("Connection event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// LogFrame logs a decoded remote keypad frame
func LogFrame(remoteAddr string, frameType string, length int) {
	Debug("Remote frame",
		zap.String("remote_addr", remoteAddr),
		zap.String("type", frameType),
		zap.Int("length", length),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
