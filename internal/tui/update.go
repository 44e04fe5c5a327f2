package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifegrid/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.ProfileChangedMsg:
		m.profile = msg.Profile
		m.recompute()
		return m, nil

	case TickMsg:
		// Only a new calendar day changes what is drawn.
		if m.snapshot == nil || !sameDay(m.snapshot.Now, m.engine.Clock.Now()) {
			m.recompute()
		}
		return m, tickCmd()
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// While the birth date field has focus every printable key is input.
	if m.currentScene == SceneForm && m.formModel.Editing() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.back()
		}
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m, navigate(SceneHelp)

	case "esc":
		return m.back()

	case "f":
		if m.currentScene != SceneForm {
			return m, navigate(SceneForm)
		}

	case "s":
		if m.currentScene != SceneStats {
			return m, navigate(SceneStats)
		}

	case "g":
		if m.currentScene != SceneGrid {
			return m, navigate(SceneGrid)
		}
	}

	return m.updateCurrentScene(msg)
}

// back returns to the previous scene, or the form when there is none.
func (m Model) back() (tea.Model, tea.Cmd) {
	if m.currentScene == SceneForm {
		return m, nil
	}
	if m.previousScene != m.currentScene {
		return m, navigate(m.previousScene)
	}
	return m, navigate(SceneForm)
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: s}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case SceneStats:
		m.statsModel, cmd = m.statsModel.Update(msg)
	case SceneGrid:
		m.gridModel, cmd = m.gridModel.Update(msg)
	}
	return m, cmd
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
