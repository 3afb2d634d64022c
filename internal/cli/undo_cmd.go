package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weekgrid/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Reverse the last create or delete",
		RunE: func(cmd *cobra.Command, args []string) error {
			action, ok := app.Logs.TakeUndo()
			if !ok {
				fmt.Println(formatter.Dim("Nothing to undo."))
				return nil
			}
			msg, err := app.Logs.PerformUndo(context.Background(), action)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("✔"), msg)
			return nil
		},
	}
}
