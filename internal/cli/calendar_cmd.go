package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evanmorales/dueline/internal/cli/formatter"
)

func newCalendarCmd(app *App) *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show deadlines on a month grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			year, month := now.Year(), now.Month()
			if monthStr != "" {
				t, err := time.Parse("2006-01", monthStr)
				if err != nil {
					return fmt.Errorf("invalid month %q: use YYYY-MM", monthStr)
				}
				year, month = t.Year(), t.Month()
			}

			cells, err := app.Tracker.Calendar(context.Background(), year, month)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderCalendar(cells, year, month))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to show (YYYY-MM, default current)")

	return cmd
}
