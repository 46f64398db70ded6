package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evanmorales/dueline/internal/cli/formatter"
	"github.com/evanmorales/dueline/internal/domain"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show notification thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Notification thresholds"))
			fmt.Print(formatter.RenderTable(
				[]string{"BUCKET", "WITHIN"},
				[][]string{
					{formatter.BucketIndicator(domain.BucketUrgent), fmt.Sprintf("%d days", s.UrgentThresholdDays)},
					{formatter.BucketIndicator(domain.BucketReminder), fmt.Sprintf("%d days", s.ReminderThresholdDays)},
					{formatter.BucketIndicator(domain.BucketUpcoming), fmt.Sprintf("%d days", s.UpcomingThresholdDays)},
				},
			))
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var urgent, reminder, upcoming int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update notification thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("urgent") {
				s.UrgentThresholdDays = urgent
			}
			if cmd.Flags().Changed("reminder") {
				s.ReminderThresholdDays = reminder
			}
			if cmd.Flags().Changed("upcoming") {
				s.UpcomingThresholdDays = upcoming
			}

			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Thresholds set: urgent %s, reminder %s, upcoming %s\n",
				strconv.Itoa(s.UrgentThresholdDays),
				strconv.Itoa(s.ReminderThresholdDays),
				strconv.Itoa(s.UpcomingThresholdDays))
			return nil
		},
	}

	cmd.Flags().IntVar(&urgent, "urgent", 0, "Urgent threshold in days")
	cmd.Flags().IntVar(&reminder, "reminder", 0, "Reminder threshold in days")
	cmd.Flags().IntVar(&upcoming, "upcoming", 0, "Upcoming threshold in days")

	return cmd
}
