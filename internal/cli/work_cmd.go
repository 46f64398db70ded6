package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evanmorales/dueline/internal/cli/formatter"
)

// resolveWorkItemID maps user input to a full work item ID. Exact matches
// win; otherwise a unique UUID prefix is accepted. Items with malformed
// deadlines are still resolvable so they can be fixed or removed.
func resolveWorkItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("work item ID is required")
	}

	snap, err := app.Tracker.Current(ctx)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(snap.Items)+len(snap.Warnings))
	for _, it := range snap.Items {
		ids = append(ids, it.ID)
	}
	for _, w := range snap.Warnings {
		ids = append(ids, w.ItemID)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("work item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Move a work item from upcoming to ongoing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.WorkItems.Start(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Started %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Move a work item from ongoing to completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.WorkItems.Complete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Completed %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
