package main

import (
	"fmt"
	"os"

	"middag/cmd"
	"middag/internal/db"
	"middag/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := db.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if config.SeedSampleMeals {
		if err := store.SeedSampleMeals(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed sample meals: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(ui.New(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
