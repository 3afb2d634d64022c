package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage logged time entries",
	}

	cmd.AddCommand(
		newEntryListCmd(app),
		newEntryEditCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var day string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged entries for a day range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			start := time.Now()
			if day != "" {
				parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --day (want YYYY-MM-DD): %w", err)
				}
				start = parsed
			}

			week, err := app.Timeline.BuildWeek(ctx, start, days)
			if err != nil {
				return err
			}

			if len(week.Logged) == 0 {
				fmt.Println(formatter.Dim("No entries."))
				return nil
			}
			for _, it := range week.Logged {
				label := it.Title
				if label == "" {
					label = it.Category
				}
				fmt.Printf("%s  %s  %s  %s\n",
					formatter.Dim(it.Interval.Start.Local().Format("Mon 2")),
					formatter.FormatRange(it.Interval.Start.Local(), it.Interval.End.Local()),
					formatter.CategoryStyle(it.Category).Render(it.Category),
					label)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "First day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 1, "Number of days")

	return cmd
}

func newEntryEditCmd(app *App) *cobra.Command {
	var id, title, categoryID, from, to string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit fields on an existing entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var req api.UpdateEntryRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("category-id") {
				req.CategoryID = &categoryID
			}
			now := time.Now()
			if from != "" {
				start, err := clockToday(now, from)
				if err != nil {
					return err
				}
				req.StartAt = &start
			}
			if to != "" {
				end, err := clockToday(now, to)
				if err != nil {
					return err
				}
				req.EndAt = &end
			}
			if req.Title == nil && req.CategoryID == nil && req.StartAt == nil && req.EndAt == nil {
				return fmt.Errorf("nothing to change")
			}

			if err := app.Logs.Update(ctx, id, req); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Entry ID")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "New category ID")
	cmd.Flags().StringVar(&from, "from", "", "New start clock time today (HH:MM)")
	cmd.Flags().StringVar(&to, "to", "", "New end clock time today (HH:MM)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete an entry (undoable once)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Logs.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted %s %s\n", id, formatter.Dim("(weekgrid undo to restore)"))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Entry ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
