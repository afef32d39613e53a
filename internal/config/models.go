package config

import (
	"fmt"
	"regexp"

	"github.com/muurk/pinpad/internal/pinentry"
)

// CurrentVersion is the config schema version this build reads and writes
const CurrentVersion = 1

// Default values for a fresh configuration
const (
	DefaultRemotePort     = 7070
	DefaultRemoteInstance = "pinpad"
	MaxCapacity           = 32
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config represents the entire user configuration file.
type Config struct {
	Version int              `yaml:"version"`
	Widget  *WidgetSettings  `yaml:"widget,omitempty"`
	Remote  *RemoteSettings  `yaml:"remote,omitempty"`
	Display *DisplaySettings `yaml:"display,omitempty"`
}

// WidgetSettings are the construction-time settings of the PIN widget
type WidgetSettings struct {
	Capacity    int     `yaml:"capacity"`     // PIN length
	Density     float64 `yaml:"density"`      // Scale for corner radius and default cell size
	BorderColor string  `yaml:"border_color"` // Outline colour (#RRGGBB)
	DotColor    string  `yaml:"dot_color"`    // Dot colour (#RRGGBB)
}

// RemoteSettings control the websocket keypad bridge
type RemoteSettings struct {
	Enabled   bool   `yaml:"enabled"`            // Start the bridge with the interactive prompt
	Host      string `yaml:"host,omitempty"`     // Listen host (empty = all interfaces)
	Port      int    `yaml:"port"`               // Listen port
	Advertise bool   `yaml:"advertise"`          // Announce the bridge over mDNS
	Instance  string `yaml:"instance,omitempty"` // mDNS instance name
}

// DisplaySettings control the terminal host
type DisplaySettings struct {
	ShowKeypad      bool `yaml:"show_keypad"`       // Show the on-screen keypad on focus
	ClearOnComplete bool `yaml:"clear_on_complete"` // Empty the widget after each completion
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Widget:  defaultWidget(),
		Remote:  defaultRemote(),
		Display: defaultDisplay(),
	}
}

func defaultWidget() *WidgetSettings {
	return &WidgetSettings{
		Capacity:    pinentry.DefaultCapacity,
		Density:     pinentry.DefaultDensity,
		BorderColor: string(pinentry.DefaultBorderColor),
		DotColor:    string(pinentry.DefaultDotColor),
	}
}

func defaultRemote() *RemoteSettings {
	return &RemoteSettings{
		Port:      DefaultRemotePort,
		Advertise: true,
		Instance:  DefaultRemoteInstance,
	}
}

func defaultDisplay() *DisplaySettings {
	return &DisplaySettings{
		ShowKeypad: true,
	}
}

// fillDefaults initializes any section a loaded file set to null
func (c *Config) fillDefaults() {
	if c.Widget == nil {
		c.Widget = defaultWidget()
	}
	if c.Remote == nil {
		c.Remote = defaultRemote()
	}
	if c.Display == nil {
		c.Display = defaultDisplay()
	}
}

// Validate checks every section and returns the first problem found
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	if c.Widget != nil {
		w := c.Widget
		if w.Capacity < 1 || w.Capacity > MaxCapacity {
			return fmt.Errorf("widget.capacity must be between 1 and %d, got %d", MaxCapacity, w.Capacity)
		}
		if w.Density <= 0 {
			return fmt.Errorf("widget.density must be positive, got %v", w.Density)
		}
		if !hexColorPattern.MatchString(w.BorderColor) {
			return fmt.Errorf("widget.border_color must be #RRGGBB, got %q", w.BorderColor)
		}
		if !hexColorPattern.MatchString(w.DotColor) {
			return fmt.Errorf("widget.dot_color must be #RRGGBB, got %q", w.DotColor)
		}
	}

	if c.Remote != nil {
		if c.Remote.Port < 1 || c.Remote.Port > 65535 {
			return fmt.Errorf("remote.port must be between 1 and 65535, got %d", c.Remote.Port)
		}
	}

	return nil
}

// WidgetConfig converts the widget section into a pinentry.Config
func (c *Config) WidgetConfig() pinentry.Config {
	w := c.Widget
	if w == nil {
		return pinentry.DefaultConfig()
	}
	return pinentry.Config{
		Capacity:    w.Capacity,
		Density:     w.Density,
		BorderColor: pinentry.Color(w.BorderColor),
		DotColor:    pinentry.Color(w.DotColor),
	}
}
