package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/taskpulse/internal/config"
	"github.com/jask/taskpulse/internal/database"
	"github.com/jask/taskpulse/internal/database/repository"
	"github.com/jask/taskpulse/internal/engine"
	"github.com/jask/taskpulse/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	runs := repository.NewRunRepo(db)
	framework := engine.New(cfg.Monitor.BatchSize)

	dashboard := tui.New(ctx, cfg, framework, runs)
	if _, err := tea.NewProgram(dashboard, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run dashboard: %v", err)
	}
}
