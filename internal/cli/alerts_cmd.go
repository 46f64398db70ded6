package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanmorales/dueline/internal/cli/formatter"
)

func newAlertsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Show deadline alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Tracker.Notifications(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderAlerts(list))
			return nil
		},
	}

	cmd.AddCommand(
		newAlertsReadCmd(app),
		newAlertsDismissCmd(app),
	)

	return cmd
}

func newAlertsReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read <key>",
		Short: "Mark an alert as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.MarkRead(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked %s read\n", args[0])
			return nil
		},
	}
}

func newAlertsDismissCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <key>",
		Short: "Dismiss an alert so it stays hidden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.Dismiss(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Dismissed %s\n", args[0])
			return nil
		},
	}
}
