// Package ui hosts the PIN widget in a terminal.
//
// The interactive host is PinModel, a Bubble Tea model that owns a
// pinentry.Widget and plays the part of the platform view system:
//
//   - window resizes become Measure/SizeSettled calls, in braille dot units
//     (two dots per column, four per row)
//   - key presses become pinentry.KeyEvent values (key-down only; terminals
//     do not report key-up)
//   - a left click on the frame is a touch-down, which focuses the widget
//     and shows the on-screen numeric keypad
//   - terminal focus and blur reports become FocusChanged calls
//   - RemoteKeyMsg carries events from the websocket keypad bridge
//
// The widget's completion callback is turned into a CompletedMsg so the
// owner can react inside Update.
//
// The non-interactive commands print through Printer, which renders Header
// banners and Result boxes.
//
// # Logging Integration
//
// This package expects logging to be controlled via the PINPAD_LOG_LEVEL
// environment variable or --log-level. When logging to stderr while the
// interactive host is running, log lines will tear the display; use
// --log-file for that.
package ui
