package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/cli"
	"github.com/alexanderramin/weekgrid/internal/service"
	"github.com/alexanderramin/weekgrid/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := api.LoadConfig()

	loc := time.Local
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}

	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}
	client := api.NewClient(cfg, observer)

	st := store.New()
	undo := &store.UndoSlot{}

	app := &cli.App{
		Timeline:   service.NewTimelineService(client, loc, cfg.IncludeGoogle, cfg.IncludeOutlook),
		Logs:       service.NewLogService(client, st, undo, cfg.Device, cfg.Source),
		Categories: service.NewCategoryService(client),
		Store:      st,
	}

	// Detect interactive terminal; the week TUI refuses to start without one.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
