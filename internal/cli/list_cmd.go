package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanmorales/dueline/internal/cli/formatter"
	"github.com/evanmorales/dueline/internal/domain"
)

func newListCmd(app *App) *cobra.Command {
	var view, sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidViewFilters[view] {
				return fmt.Errorf("invalid view %q (all, upcoming, ongoing, overdue)", view)
			}
			if !domain.ValidSortKeys[sortBy] {
				return fmt.Errorf("invalid sort %q (deadline, priority, payment, status)", sortBy)
			}

			ctx := context.Background()
			items, err := app.Tracker.View(ctx, domain.ViewFilter(view), domain.SortKey(sortBy))
			if err != nil {
				return err
			}
			snap, err := app.Tracker.Current(ctx)
			if err != nil {
				return err
			}

			if snap.Stale {
				fmt.Println(formatter.Dim("warning: showing last known data, refresh failed"))
			}
			fmt.Print(formatter.RenderTimeline(items, snap.Warnings))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", app.DefaultView, "Filter: all, upcoming, ongoing, overdue")
	cmd.Flags().StringVar(&sortBy, "sort", app.DefaultSort, "Sort: deadline, priority, payment, status")

	return cmd
}
