package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evanmorales/dueline/internal/cli/formatter"
	"github.com/evanmorales/dueline/internal/domain"
)

func newAddCmd(app *App) *cobra.Command {
	var title, company, description, deadline, payment string
	var progress int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work item to track",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags and a terminal: collect via form.
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				var progressStr string
				form := addItemForm(&title, &company, &description, &deadline, &payment, &progressStr)
				if err := form.Run(); err != nil {
					return err
				}
				if progressStr != "" {
					progress, _ = strconv.Atoi(progressStr)
				}
			}

			if title == "" {
				return fmt.Errorf("--title is required")
			}
			if err := validateDeadline(deadline); err != nil {
				return fmt.Errorf("invalid deadline %q: %w", deadline, err)
			}

			w := &domain.WorkItem{
				Title:       title,
				Company:     company,
				Description: description,
				Deadline:    deadline,
				Payment:     payment,
				Progress:    progress,
				Status:      domain.StatusUpcoming,
			}
			if err := app.WorkItems.Create(context.Background(), w); err != nil {
				return err
			}

			fmt.Printf("Added %q [%s] due %s\n", w.Title, formatter.TruncID(w.ID), w.Deadline)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Work item title")
	cmd.Flags().StringVar(&company, "company", "", "Company or client name")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&payment, "payment", "", "Payment amount, e.g. \"$1,200\"")
	cmd.Flags().IntVar(&progress, "progress", 0, "Initial progress percent (0-100)")

	return cmd
}
