package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/config"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/tui"
)

func main() {
	profile := domain.NewProfile()

	// An optional profile file pre-fills the form.
	if len(os.Args) > 1 {
		profilePath := os.Args[1]
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			fmt.Printf("Error: Profile file not found: %s\n", profilePath)
			os.Exit(1)
		}

		p, err := config.NewInputParser().LoadFromFile(profilePath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		profile = *p
	}

	model := tui.NewModel(profile, calculation.NewEngine())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
