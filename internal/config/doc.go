// Package config provides user configuration management for pinpad.
//
// This package manages a YAML-based configuration file holding the widget's
// appearance (PIN length, density, colours), the remote keypad bridge
// settings, and terminal display preferences. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/pinpad/config.yaml or $HOME/.config/pinpad/config.yaml
//   - macOS: $HOME/.config/pinpad/config.yaml
//   - Windows: %LOCALAPPDATA%\pinpad\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores entered PINs. The widget keeps its
// digits in memory only.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	widget, err := pinentry.New(cfg.WidgetConfig(), hooks)
//
//	cfg.Widget.Capacity = 4
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File operations are protected by a mutex to ensure atomic writes.
package config
