package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/tui/scenes"
)

// tickInterval is how often the clock is re-read.
const tickInterval = time.Minute

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	profile  domain.Profile
	engine   *calculation.Engine
	snapshot *domain.Snapshot

	formModel  *scenes.FormModel
	statsModel *scenes.StatsModel
	gridModel  *scenes.GridModel

	// Error state
	err error
}

// NewModel creates a new application model. It opens on the form until a
// birth date is known, and on the statistics afterwards.
func NewModel(profile domain.Profile, engine *calculation.Engine) Model {
	if engine == nil {
		engine = calculation.NewEngine()
	}

	m := Model{
		currentScene: SceneForm,
		profile:      profile,
		engine:       engine,
		formModel:    scenes.NewFormModel(profile, engine.Clock.Now),
		statsModel:   scenes.NewStatsModel(),
		gridModel:    scenes.NewGridModel(),
		width:        80,
		height:       24,
	}
	if profile.HasBirthDate() {
		m.currentScene = SceneStats
	}
	m.previousScene = m.currentScene
	m.resize()
	m.recompute()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd schedules the next clock check.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// recompute evaluates the current profile and hands the snapshot to every
// scene.
func (m *Model) recompute() {
	m.snapshot = m.engine.Snapshot(m.profile)
	m.statsModel.SetSnapshot(m.snapshot)
	m.gridModel.SetSnapshot(m.snapshot)
}

// resize passes the content area to every scene.
func (m *Model) resize() {
	h := max(m.height-4, 1)
	m.formModel.SetSize(m.width, h)
	m.statsModel.SetSize(m.width, h)
	m.gridModel.SetSize(m.width, h)
}

// Snapshot returns the figures currently on screen
func (m Model) Snapshot() *domain.Snapshot {
	return m.snapshot
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}
