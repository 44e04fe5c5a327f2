package scenes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/output"
	"github.com/rgehrsitz/lifegrid/internal/tui/components"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuistyles"
)

// StatsModel shows the headline figures and the progress bar
type StatsModel struct {
	snapshot *domain.Snapshot
	width    int
	height   int
}

// NewStatsModel creates a new stats model
func NewStatsModel() *StatsModel {
	return &StatsModel{}
}

// SetSize updates the model dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSnapshot replaces the figures on display
func (m *StatsModel) SetSnapshot(snap *domain.Snapshot) {
	m.snapshot = snap
}

// Update handles messages for the stats scene
func (m *StatsModel) Update(msg tea.Msg) (*StatsModel, tea.Cmd) {
	return m, nil
}

// Cards builds one metric card per statistic.
func (m *StatsModel) Cards() []*components.MetricCard {
	if !m.snapshot.Ready() {
		return nil
	}
	lines := output.StatLines(m.snapshot.Statistics)
	cards := make([]*components.MetricCard, 0, len(lines))
	for i, l := range lines {
		card := components.NewMetricCard(l.Label, l.Value)
		if i < len(tuistyles.MetricColors) {
			card.WithColor(tuistyles.MetricColors[i])
		}
		cards = append(cards, card)
	}
	return cards
}

// View renders the stats scene
func (m *StatsModel) View() string {
	if !m.snapshot.Ready() {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render(output.NotReadyLine))
	}

	var content strings.Builder

	columns := 3
	if m.width > 0 && m.width < 80 {
		columns = 2
	}
	content.WriteString(components.MetricGrid(m.Cards(), columns))
	content.WriteString("\n\n")

	barWidth := 50
	if m.width > 0 {
		barWidth = min(barWidth, max(m.width-24, 10))
	}
	bar := components.NewProgressBar(m.snapshot.Statistics).
		WithLabel("Life Progress").
		WithWidth(barWidth)
	content.WriteString(bar.Render())
	content.WriteString("\n\n")

	summary := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)
	content.WriteString(summary.Render(output.SummaryLine(m.snapshot.Statistics.PercentageLived)))
	content.WriteString("\n")
	content.WriteString(tuistyles.QuoteStyle.Render(output.Reminder))

	return content.String()
}
