// Package logging provides structured logging for pinpad.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the widget host, the remote keypad bridge, and the
// CLI.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Key events, entry transitions, remote frames
//   - Info: Completion, connections, bridge lifecycle
//   - Warn: Rejected frames, advertising failures
//   - Error: Startup failures, critical errors
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Keypad bridge listening",
//	    zap.String("addr", "0.0.0.0:7070"),
//	    zap.Int("capacity", 6),
//	)
//
// # Secrets
//
// Entered digits are never logged. Transition and completion records carry
// the entry length only.
//
// # Configuration
//
// Logging is silent unless a level is given or PINPAD_LOG_LEVEL is set:
//
//	if err := logging.InitializeWithOutput("debug", "/tmp/pinpad.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output defaults to stderr because the terminal host draws on stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
