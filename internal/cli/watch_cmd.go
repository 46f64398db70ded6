package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/evanmorales/dueline/internal/cli/formatter"
	"github.com/evanmorales/dueline/internal/engine"
	"github.com/evanmorales/dueline/internal/service"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live dashboard that refreshes on an interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}

			// Background loop does the periodic recomputation; the UI
			// tick only reads snapshots.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			refresher := service.NewRefresher(app.Tracker, app.RefreshInterval)
			refresher.Start(ctx)
			defer refresher.Stop()

			m := newWatchModel(app)
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type watchKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Read    key.Binding
	Dismiss key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultWatchKeys() watchKeyMap {
	return watchKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Read:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "mark read")),
		Dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
		Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh now")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type tickMsg time.Time

type snapshotMsg struct {
	snap *service.Snapshot
	err  error
}

// watchModel is the bubbletea model for the live dashboard. It re-reads the
// tracker snapshot on every tick and lets the cursor act on alerts.
type watchModel struct {
	app    *App
	keys   watchKeyMap
	snap   *service.Snapshot
	err    error
	cursor int
	width  int
}

func newWatchModel(app *App) watchModel {
	return watchModel{app: app, keys: defaultWatchKeys()}
}

// uiTick is how often the view re-reads the snapshot. The heavy lifting
// happens in the background Refresher, so this just picks up its results.
const uiTick = time.Second

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m watchModel) read() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.app.Tracker.Current(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m watchModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.app.Tracker.Refresh(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.read(), m.tick())
}

func (m watchModel) visibleAlerts() []string {
	if m.snap == nil {
		return nil
	}
	keys := make([]string, 0, len(m.snap.Notifications))
	for _, n := range engine.Visible(m.snap.Notifications) {
		keys = append(keys, n.ID)
	}
	return keys
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.read(), m.tick())

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.snap = msg.snap
		if alerts := m.visibleAlerts(); m.cursor >= len(alerts) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visibleAlerts())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()
		case key.Matches(msg, m.keys.Read):
			if alerts := m.visibleAlerts(); m.cursor < len(alerts) {
				keyID := alerts[m.cursor]
				return m, func() tea.Msg {
					if err := m.app.Tracker.MarkRead(context.Background(), keyID); err != nil {
						return snapshotMsg{err: err}
					}
					snap, err := m.app.Tracker.Current(context.Background())
					return snapshotMsg{snap: snap, err: err}
				}
			}
		case key.Matches(msg, m.keys.Dismiss):
			if alerts := m.visibleAlerts(); m.cursor < len(alerts) {
				keyID := alerts[m.cursor]
				return m, func() tea.Msg {
					if err := m.app.Tracker.Dismiss(context.Background(), keyID); err != nil {
						return snapshotMsg{err: err}
					}
					snap, err := m.app.Tracker.Current(context.Background())
					return snapshotMsg{snap: snap, err: err}
				}
			}
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Dueline"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.snap == nil {
		b.WriteString(formatter.Dim("Loading..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.snap.Stale {
		b.WriteString(formatter.Dim("showing last known data, refresh failed"))
		b.WriteString("\n")
	}

	b.WriteString(formatter.RenderTimeline(m.snap.Items, m.snap.Warnings))
	b.WriteString("\n")

	visible := engine.Visible(m.snap.Notifications)
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("No active alerts."))
		b.WriteString("\n")
	} else {
		for i, n := range visible {
			prefix := "  "
			if i == m.cursor {
				prefix = formatter.StyleHeader.Render("> ")
			}
			marker := " "
			if !n.IsRead {
				marker = formatter.Bold("●")
			}
			b.WriteString(fmt.Sprintf("%s%s %s %s\n", prefix, marker, formatter.BucketIndicator(n.Bucket), n.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("updated %s", m.snap.GeneratedAt.Format("15:04:05"))))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ move  r read  d dismiss  R refresh  q quit"))
	b.WriteString("\n")
	return b.String()
}
