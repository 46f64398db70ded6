package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evanmorales/dueline/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityColor returns the lipgloss style for the given priority.
func PriorityColor(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// PriorityIndicator returns a colored indicator string such as "● HIGH".
func PriorityIndicator(p domain.Priority) string {
	return PriorityColor(p).Render("● " + strings.ToUpper(string(p)))
}

// BucketIndicator returns a colored bucket label for an alert.
func BucketIndicator(b domain.Bucket) string {
	switch b {
	case domain.BucketUrgent:
		return StyleRed.Render("URGENT")
	case domain.BucketReminder:
		return StyleYellow.Render("REMINDER")
	case domain.BucketUpcoming:
		return StyleBlue.Render("UPCOMING")
	default:
		return StyleDim.Render(strings.ToUpper(string(b)))
	}
}

// StatusPill returns a colored status label.
func StatusPill(s domain.ItemStatus) string {
	switch s {
	case domain.StatusOngoing:
		return StyleBlue.Render("ongoing")
	case domain.StatusCompleted:
		return StyleGreen.Render("completed")
	default:
		return StyleFg.Render("upcoming")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
