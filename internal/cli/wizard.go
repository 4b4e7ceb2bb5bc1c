package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
)

// folioHuhTheme returns a huh theme using the formatter palette.
func folioHuhTheme() *huh.Theme {
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
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themed(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// wizardLogin collects the name and email for a login.
func wizardLogin(name, email *string) *huh.Form {
	return themed(
		huh.NewGroup(
			requiredInput("Name", "Jane Doe", name),
			huh.NewInput().
				Title("Email").
				Placeholder("jane@example.com").
				Value(email).
				Validate(validateEmail),
		),
	)
}

// wizardProject collects the fields of a new project.
func wizardProject(title, description, date, cover *string) *huh.Form {
	return themed(
		huh.NewGroup(
			requiredInput("Title", "Brand Identity Design", title),
			huh.NewText().Title("Description").Value(description),
			dateInput("Date (YYYY-MM-DD, blank for none)", "", date),
			imageInput("Cover image (file, URL or data URI, blank for none)", cover),
		),
	)
}

// wizardTimelineEntry collects the fields of a new timeline entry.
func wizardTimelineEntry(title, description, date, image *string) *huh.Form {
	return themed(
		huh.NewGroup(
			requiredInput("Title", "First Client Project", title),
			huh.NewText().Title("Description").Value(description),
			dateInput("Date (YYYY-MM-DD)", "", date),
			imageInput("Image (file, URL or data URI, blank for none)", image),
		),
	)
}

// wizardVideo collects the fields of a new video.
func wizardVideo(title, description, url *string) *huh.Form {
	return themed(
		huh.NewGroup(
			requiredInput("Title", "Brand Identity Showcase", title),
			huh.NewText().Title("Description").Value(description),
			requiredInput("YouTube or embed URL", "https://www.youtube.com/watch?v=...", url),
		),
	)
}

// wizardLayout lets the user pick project and timeline layouts.
func wizardLayout(projects, timeline *string, samples *bool) *huh.Form {
	return themed(
		huh.NewGroup(
			layoutSelect("Project layout", projects),
			layoutSelect("Timeline layout", timeline),
			huh.NewConfirm().Title("Show sample content?").Affirmative("Yes").Negative("No").Value(samples),
		),
	)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateEmail(s string) error {
	if !domain.ValidEmail(s) {
		return fmt.Errorf("enter an email address")
	}
	return nil
}

// validateOptionalDate accepts empty or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateLayout(s string) error {
	if _, ok := domain.ParseLayoutKind(s); !ok {
		return fmt.Errorf("layout must be grid, masonry or carousel")
	}
	return nil
}
