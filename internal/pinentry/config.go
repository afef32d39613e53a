package pinentry

import (
	"errors"
	"fmt"
)

const (
	// DefaultCapacity is the PIN length used when none is configured
	DefaultCapacity = 6

	// DefaultDensity is the device density scale (1.0 = baseline)
	DefaultDensity = 1.0

	// DefaultBorderColor is the stroke colour for the outline and dividers
	DefaultBorderColor Color = "#CCCCCC"

	// DefaultDotColor is the fill colour for entered-digit dots
	DefaultDotColor Color = "#888888"

	// BorderMargin is subtracted from each settled dimension to form the
	// drawable bounds (one unit per side).
	BorderMargin = 2

	// BorderStrokeWidth is the stroke width of the outline and dividers
	BorderStrokeWidth = 2

	cornerRadiusFactor = 5
	defaultCellFactor  = 20
)

// ErrInvalidCapacity is returned when a widget is configured with fewer than one cell
var ErrInvalidCapacity = errors.New("capacity must be at least 1")

// Color is a hex colour string ("#RRGGBB")
type Color string

// Config holds the construction-time settings of a widget.
// None of these change for the lifetime of the widget.
type Config struct {
	Capacity    int     // Number of cells (PIN length)
	Density     float64 // Device density scale for radius and default cell size
	BorderColor Color   // Outline and divider colour
	DotColor    Color   // Dot fill colour
}

// DefaultConfig returns a six-cell configuration at baseline density
func DefaultConfig() Config {
	return Config{
		Capacity:    DefaultCapacity,
		Density:     DefaultDensity,
		BorderColor: DefaultBorderColor,
		DotColor:    DefaultDotColor,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidCapacity, c.Capacity)
	}
	return nil
}

// withDefaults fills zero-valued optional fields
func (c Config) withDefaults() Config {
	if c.Density <= 0 {
		c.Density = DefaultDensity
	}
	if c.BorderColor == "" {
		c.BorderColor = DefaultBorderColor
	}
	if c.DotColor == "" {
		c.DotColor = DefaultDotColor
	}
	return c
}

// PaintStyle selects how a primitive is drawn
type PaintStyle int

const (
	// PaintStroke outlines the shape
	PaintStroke PaintStyle = iota
	// PaintFill fills the shape
	PaintFill
)

// String returns the style name
func (s PaintStyle) String() string {
	switch s {
	case PaintStroke:
		return "stroke"
	case PaintFill:
		return "fill"
	default:
		return fmt.Sprintf("PaintStyle(%d)", s)
	}
}

// Paint describes how a single draw call is rendered.
// Paints are plain values; surfaces must not retain or mutate them.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
	AntiAlias   bool
}

// Style is the pair of paints a widget renders with
type Style struct {
	Border Paint
	Dot    Paint
}

// NewStyle builds the border and dot paints from two colours
func NewStyle(border, dot Color) Style {
	return Style{
		Border: Paint{
			Color:       border,
			Style:       PaintStroke,
			StrokeWidth: BorderStrokeWidth,
			AntiAlias:   true,
		},
		Dot: Paint{
			Color:     dot,
			Style:     PaintFill,
			AntiAlias: true,
		},
	}
}
