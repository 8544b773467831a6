package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"paneldock/internal/layout"
	"paneldock/internal/prefs"
	"paneldock/internal/telemetry"
	"paneldock/internal/ui"
)

func main() {
	pref, err := prefs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading preferences: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	tracer, err := telemetry.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up telemetry: %v\n", err)
		os.Exit(1)
	}
	defer tracer.Shutdown(ctx)

	layouts := layout.Open(layout.DefaultResourceFinder)
	app := ui.NewApp(layouts, pref, tracer)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
