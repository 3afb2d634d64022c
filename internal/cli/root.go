package cli

import (
	"github.com/alexanderramin/weekgrid/internal/service"
	"github.com/alexanderramin/weekgrid/internal/store"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timeline   service.TimelineService
	Logs       service.LogService
	Categories service.CategoryService
	Store      *store.Store

	// IsInteractive reports whether stdin is a terminal; the week TUI
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "weekgrid" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "weekgrid",
		Short: "Week timeline for planned events and logged time",
	}

	root.AddCommand(
		newWeekCmd(app),
		newLogCmd(app),
		newEntryCmd(app),
		newUndoCmd(app),
	)

	return root
}
