package tui

import "time"

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneStats
	SceneGrid
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// TickMsg is sent every minute so the grid rolls over at midnight
type TickMsg struct {
	Time time.Time
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Profile"
	case SceneStats:
		return "Statistics"
	case SceneGrid:
		return "Grid"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
