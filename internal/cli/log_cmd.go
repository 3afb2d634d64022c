package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weekgrid/internal/cli/formatter"
	"github.com/alexanderramin/weekgrid/internal/domain"
	"github.com/alexanderramin/weekgrid/internal/drag"
	"github.com/alexanderramin/weekgrid/internal/service"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var category, title, from, to string
	var minutes int
	var tags []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a time entry ending now, or between explicit times",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if category == "" && title == "" {
				return fmt.Errorf("provide --category or --title")
			}

			interval, err := resolveRange(time.Now(), minutes, from, to)
			if err != nil {
				return err
			}

			catID, catName, err := resolveCategory(ctx, app, category, title)
			if err != nil {
				return err
			}

			id, err := app.Logs.Create(ctx, service.LogInput{
				Interval:   interval,
				CategoryID: catID,
				Category:   catName,
				Title:      title,
				Tags:       tags,
			})
			if err != nil {
				return err
			}
			app.Logs.RecordCreate(id)

			fmt.Printf("Logged %s %s %s (%s)\n",
				formatter.Bold(catName),
				formatter.FormatRange(interval.Start, interval.End),
				formatter.Dim(title),
				id)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category name")
	cmd.Flags().StringVar(&title, "title", "", "Free-text title (auto-categorized when no category is given)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration ending now")
	cmd.Flags().StringVar(&from, "from", "", "Start clock time today (HH:MM)")
	cmd.Flags().StringVar(&to, "to", "", "End clock time today (HH:MM)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (repeatable)")

	return cmd
}

// resolveRange picks the entry interval: an explicit clock-time pair wins,
// otherwise [now − minutes, now].
func resolveRange(now time.Time, minutes int, from, to string) (domain.TimeInterval, error) {
	if from != "" || to != "" {
		if from == "" || to == "" {
			return domain.TimeInterval{}, fmt.Errorf("--from and --to must be given together")
		}
		start, err := clockToday(now, from)
		if err != nil {
			return domain.TimeInterval{}, err
		}
		end, err := clockToday(now, to)
		if err != nil {
			return domain.TimeInterval{}, err
		}
		iv := domain.TimeInterval{Start: start, End: end}
		if !iv.IsValid() {
			return domain.TimeInterval{}, fmt.Errorf("--to must be after --from")
		}
		return iv, nil
	}

	if minutes <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("provide --minutes or --from/--to")
	}
	chunk := drag.QuickRange(now, time.Duration(minutes)*time.Minute)
	return domain.TimeInterval{Start: chunk.Start, End: chunk.End}, nil
}

func clockToday(now time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q (want HH:MM)", clock)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

// resolveCategory maps a category name (or, failing that, the title via
// the auto-categorization lookup) to a server category.
func resolveCategory(ctx context.Context, app *App, category, title string) (id, name string, err error) {
	cats, err := app.Categories.List(ctx)
	if err != nil {
		return "", "", fmt.Errorf("listing categories: %w", err)
	}

	want := category
	if want == "" {
		want = service.AutoCategorize(title)
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, want) {
			return c.ID, c.Name, nil
		}
	}
	if category != "" {
		return "", "", fmt.Errorf("unknown category %q", category)
	}
	// Auto-categorization missed; fall back to the first category rather
	// than refusing a title-only log from the CLI.
	if len(cats) == 0 {
		return "", "", fmt.Errorf("no categories configured")
	}
	return cats[0].ID, cats[0].Name, nil
}
