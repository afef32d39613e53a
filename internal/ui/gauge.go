package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// EntryGauge shows how many of the widget's digits are filled
type EntryGauge struct {
	bar progress.Model
}

// NewEntryGauge creates a gauge with a solid bar in the given colour
func NewEntryGauge(color string, width int) EntryGauge {
	return EntryGauge{bar: newBar(color, width)}
}

// SetWidth resizes the bar, clamped to [10, 40] cells
func (g *EntryGauge) SetWidth(width int) {
	width = min(max(width, 10), 40)
	g.bar.Width = width
}

// View renders the bar followed by "filled/capacity"
func (g EntryGauge) View(filled, capacity int) string {
	percent := 0.0
	if capacity > 0 {
		percent = float64(filled) / float64(capacity)
	}
	count := lipgloss.NewStyle().Foreground(MutedColor).Render(fmt.Sprintf("%d/%d", filled, capacity))
	return g.bar.ViewAs(percent) + "  " + count
}

func newBar(color string, width int) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	return bar
}
