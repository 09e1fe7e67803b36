package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"tocboard/app"
	"tocboard/internal/config"
	"tocboard/internal/demo"
	"tocboard/internal/logging"
	"tocboard/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := logging.Setup(cfg.Log.Path, cfg.Log.Level); err != nil {
		log.Fatalf("logging: %v", err)
	}
	logging.Component("main").WithField("log", cfg.Log.Path).Info("starting")

	store := session.NewStore()

	p := tea.NewProgram(app.New(cfg.UI, store, demo.Pages), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
