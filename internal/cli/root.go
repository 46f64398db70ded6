package cli

import (
	"time"

	"github.com/evanmorales/dueline/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	WorkItems service.WorkItemService
	Settings  service.SettingsService
	Tracker   service.TrackerService

	// RefreshInterval drives the watch dashboard tick.
	RefreshInterval time.Duration

	// DefaultView and DefaultSort preset the list command flags.
	DefaultView string
	DefaultSort string

	// IsInteractive reports whether stdin is a terminal; forms are only
	// offered interactively.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dueline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dueline",
		Short: "Deadline tracker for job applications and contract work",
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newStartCmd(app),
		newCompleteCmd(app),
		newCalendarCmd(app),
		newAlertsCmd(app),
		newSettingsCmd(app),
		newWatchCmd(app),
	)

	return root
}
