package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var startDay string
	var days int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Open the interactive week timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("week requires an interactive terminal")
			}

			anchor := time.Now()
			if startDay != "" {
				parsed, err := time.ParseInLocation("2006-01-02", startDay, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --start (want YYYY-MM-DD): %w", err)
				}
				anchor = parsed
			}
			if days < 1 || days > 31 {
				return fmt.Errorf("--days must be between 1 and 31")
			}

			m := newWeekModel(app, weekAnchor(anchor), days)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&startDay, "start", "", "First day of the grid (YYYY-MM-DD, default: current week)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of day columns")

	return cmd
}

// weekAnchor snaps t to the local midnight of its Monday.
func weekAnchor(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7 // Monday = 0
	return midnight.AddDate(0, 0, -offset)
}
