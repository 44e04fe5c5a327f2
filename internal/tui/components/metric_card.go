package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuistyles"
)

// MetricCard displays a single figure with its label underneath
type MetricCard struct {
	Label string
	Value string
	Color lipgloss.TerminalColor
	Width int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Color: tuistyles.ColorForeground,
		Width: 22,
	}
}

// WithColor sets the value color
func (m *MetricCard) WithColor(c lipgloss.TerminalColor) *MetricCard {
	m.Color = c
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	value := tuistyles.MetricValueStyle.Foreground(m.Color).Render(m.Value)
	label := tuistyles.MetricLabelStyle.Render(m.Label)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(value + "\n" + label)
}

// RenderCompact returns a compact inline version without border
func (m *MetricCard) RenderCompact() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label + ":")
	value := tuistyles.MetricValueStyle.Foreground(m.Color).Render(m.Value)
	return label + " " + value
}

// MetricGrid renders multiple metric cards in a grid layout
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	rows := []string{}
	currentRow := []string{}

	for i, card := range cards {
		currentRow = append(currentRow, card.Render())

		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
