package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/agenda/internal/cli"
	"github.com/alexanderramin/agenda/internal/config"
	"github.com/alexanderramin/agenda/internal/db"
	"github.com/alexanderramin/agenda/internal/notify"
	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	itemRepo := repository.NewSQLiteItemRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)

	var observer service.UseCaseObserver
	var logWriter io.Writer
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logWriter = f
		observer = service.NewLogUseCaseObserver(f)
	}

	app := &cli.App{
		Items:  service.NewItemService(itemRepo, db.NewSQLiteUnitOfWork(database)),
		Agenda: service.NewAgendaService(itemRepo, observer),
		Prefs:  service.NewPreferencesService(prefsRepo),
		Now:    time.Now,
	}

	if cfg.NotifyEnabled {
		sinkOut := logWriter
		if sinkOut == nil {
			sinkOut = os.Stderr
		}
		app.Notify = notify.NewDispatcher(
			itemRepo, notificationRepo,
			notify.NewLogSink(sinkOut),
			notify.WithTick(cfg.NotifyTick),
		)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
