package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuistyles"
)

// ProgressBar shows the share of the expected lifespan already lived
type ProgressBar struct {
	Stats domain.Statistics
	Width int
	Label string
}

// NewProgressBar creates a new progress bar
func NewProgressBar(stats domain.Statistics) *ProgressBar {
	return &ProgressBar{
		Stats: stats,
		Width: 50,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Filled is the number of filled cells, never more than Width.
func (p *ProgressBar) Filled() int {
	filled := int(p.Stats.ProgressFraction()*float64(p.Width) + 0.5)
	return min(max(filled, 0), p.Width)
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(p.Label))
		content.WriteString("\n")
	}

	filled := p.Filled()
	empty := p.Width - filled

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("] ")

	percentStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)
	content.WriteString(percentStyle.Render(p.Stats.PercentDisplay() + "% Complete"))

	return content.String()
}
