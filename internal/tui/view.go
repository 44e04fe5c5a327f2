package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/lifegrid/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.formModel.View()
	case SceneStats:
		content = m.statsModel.View()
	case SceneGrid:
		content = m.gridModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := max(m.height-4, 1) // Title (2) + status (2)

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("LifeGrid")

	breadcrumb := m.currentScene.String()
	if m.profile.Name != "" {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.profile.Name)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title+"  "+SubtitleStyle.Render(output.Tagline),
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("f", "profile"),
		formatShortcut("s", "stats"),
		formatShortcut("g", "grid"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}
	statusText := strings.Join(shortcuts, " • ")

	if m.snapshot.Ready() {
		pct := SubtitleStyle.Render(m.snapshot.Statistics.PercentDisplay() + "% lived")
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(pct) - 2
		statusText = statusText + strings.Repeat(" ", max(0, width)) + pct
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err),
	)
	return m.renderApp(content)
}

// renderHelp renders the help screen
func renderHelp() string {
	helpText := `
LifeGrid - your life in days

KEYBOARD SHORTCUTS:
  f        Edit birth date and life expectancy
  s        Show statistics
  g        Show the day grid
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

PROFILE:
  Type the birth date as YYYY-MM-DD and press Enter
  Tab to move between fields
  ←/→ or +/- to adjust life expectancy, p to cycle presets

GRID:
  ↑/↓, PgUp/PgDn to scroll
  t to jump to today
`
	return BorderStyle.Render(helpText + "\n" + QuoteStyle.Render(output.Quote))
}
