package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/output"
	"github.com/rgehrsitz/lifegrid/internal/tui/components"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuistyles"
)

// chrome is the number of lines the grid scene draws around the viewport.
const chrome = 4

// GridModel shows the scrollable day grid
type GridModel struct {
	snapshot *domain.Snapshot
	viewport viewport.Model
	width    int
	height   int
}

// NewGridModel creates a new grid model
func NewGridModel() *GridModel {
	return &GridModel{
		viewport: viewport.New(80, 20),
	}
}

// SetSize updates the model dimensions
func (m *GridModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 3)
}

// SetSnapshot redraws the grid and scrolls so today's row is visible.
func (m *GridModel) SetSnapshot(snap *domain.Snapshot) {
	m.snapshot = snap
	if snap == nil || snap.Grid == nil {
		m.viewport.SetContent("")
		return
	}

	m.viewport.SetContent(components.RenderGrid(snap.Grid))
	m.ScrollToToday()
}

// ScrollToToday centres the viewport on the row holding today, if any.
func (m *GridModel) ScrollToToday() {
	if m.snapshot == nil || m.snapshot.Grid == nil {
		return
	}
	today, ok := m.snapshot.Grid.TodayIndex()
	if !ok {
		m.viewport.GotoBottom()
		return
	}
	row := components.GridRowOf(m.snapshot.Grid, today)
	m.viewport.SetYOffset(max(row-m.viewport.Height/2, 0))
}

// YOffset is the first visible grid row.
func (m *GridModel) YOffset() int {
	return m.viewport.YOffset
}

// Update handles messages for the grid scene
func (m *GridModel) Update(msg tea.Msg) (*GridModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "t" {
		m.ScrollToToday()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Caption describes the grid under the legend.
func (m *GridModel) Caption() string {
	if m.snapshot == nil || m.snapshot.Grid == nil {
		return ""
	}
	g := m.snapshot.Grid
	return fmt.Sprintf("Based on %d-year life expectancy (%s total days)",
		m.snapshot.Profile.LifeExpectancy, output.FormatCount(g.TotalDays))
}

// View renders the grid scene
func (m *GridModel) View() string {
	if m.snapshot == nil || m.snapshot.Grid == nil {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render(output.NotReadyLine))
	}

	var content strings.Builder
	content.WriteString(components.GridLegend())
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(m.Caption() + " • " + output.RowCaption))
	content.WriteString("\n")
	content.WriteString(m.viewport.View())
	content.WriteString("\n")
	content.WriteString(tuistyles.InfoStyle.Render(fmt.Sprintf("↑/↓ to scroll • t to jump to today • %d%%", int(m.viewport.ScrollPercent()*100))))
	return content.String()
}
