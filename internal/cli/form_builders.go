package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/evanmorales/dueline/internal/cli/formatter"
)

func duelineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired accepts any non-empty string.
func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// validateDeadline accepts a YYYY-MM-DD date or an RFC 3339 timestamp.
func validateDeadline(s string) error {
	if s == "" {
		return fmt.Errorf("deadline is required")
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	return fmt.Errorf("use YYYY-MM-DD or RFC 3339 format")
}

// validateOptionalPercent accepts empty or an integer in 0-100.
func validateOptionalPercent(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a number between 0 and 100")
	}
	return nil
}

// addItemForm collects the fields for a new work item.
func addItemForm(title, company, description, deadline, payment, progress *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Backend Engineer Application").
				Value(title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Company").
				Placeholder("Acme Corp").
				Value(company),
			huh.NewInput().
				Title("Description").
				Value(description),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("2026-09-30").
				Value(deadline).
				Validate(validateDeadline),
			huh.NewInput().
				Title("Payment (blank for none)").
				Placeholder("$1,200").
				Value(payment),
			huh.NewInput().
				Title("Progress % (blank for 0)").
				Placeholder("0").
				Value(progress).
				Validate(validateOptionalPercent),
		),
	).WithTheme(duelineHuhTheme()).WithShowHelp(false)
}
