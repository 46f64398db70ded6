package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/evanmorales/dueline/internal/cli"
	"github.com/evanmorales/dueline/internal/config"
	"github.com/evanmorales/dueline/internal/db"
	"github.com/evanmorales/dueline/internal/repository"
	"github.com/evanmorales/dueline/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config path: env var or ~/.config/dueline/config.yaml
	cfgPath := os.Getenv("DUELINE_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// DB path override: env var beats config
	dbPath := os.Getenv("DUELINE_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	notifStateRepo := repository.NewSQLiteNotificationStateRepo(database)

	// Wire services; mutating services signal the tracker dirty
	tracker := service.NewTrackerService(workItemRepo, settingsRepo, notifStateRepo)

	app := &cli.App{
		WorkItems:       service.NewWorkItemService(workItemRepo, tracker),
		Settings:        service.NewSettingsService(settingsRepo, tracker),
		Tracker:         tracker,
		RefreshInterval: time.Duration(cfg.RefreshIntervalSec) * time.Second,
		DefaultView:     cfg.DefaultView,
		DefaultSort:     cfg.DefaultSort,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
