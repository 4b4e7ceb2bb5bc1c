package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/folio/internal/domain"
)

// FormatProjectList renders projects as a table inside a bordered box.
func FormatProjectList(projects []domain.Project, now time.Time) string {
	headers := []string{"ID", "TITLE", "DATE", "IMAGES", "UPDATED"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID,
			Bold(p.Title),
			DisplayDate(p.Date),
			fmt.Sprintf("%d", len(p.Images)),
			HumanTimestamp(p.UpdatedAt, now),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectCards renders projects as cards arranged by kind.
func FormatProjectCards(projects []domain.Project, kind domain.LayoutKind, width int) string {
	if len(projects) == 0 {
		return Dim("No projects yet.")
	}
	n := columns(width)
	if kind == domain.LayoutCarousel {
		n = 1
	}
	w := cardWidth(width, n)
	cards := make([]string, len(projects))
	for i, p := range projects {
		var body []string
		if p.Date != "" {
			body = append(body, Dim(DisplayDate(p.Date)))
		}
		if p.Description != "" {
			body = append(body, p.Description)
		}
		if len(p.Images) > 0 {
			body = append(body, Dim(fmt.Sprintf("%d image(s)", len(p.Images))))
		}
		cards[i] = Card(p.Title, strings.Join(body, "\n"), w)
	}
	return Arrange(kind, cards, width, 0)
}

// FormatProjectDetail renders one project with all of its fields.
func FormatProjectDetail(p domain.Project, now time.Time) string {
	label := lipgloss.NewStyle().Foreground(ColorDim).Width(12)
	line := func(k, v string) string { return label.Render(k) + v }

	lines := []string{
		line("ID", p.ID),
		line("Date", DisplayDate(p.Date)),
		line("Cover", ImageRef(p.CoverImage)),
		line("Created", HumanTimestamp(p.CreatedAt, now)),
		line("Updated", HumanTimestamp(p.UpdatedAt, now)),
	}
	if p.Description != "" {
		lines = append(lines, "", p.Description)
	}
	if len(p.Images) > 0 {
		lines = append(lines, "", Header("Images"))
		for i, img := range p.Images {
			lines = append(lines, fmt.Sprintf("%s %s", Dim(fmt.Sprintf("%2d.", i+1)), ImageRef(img)))
		}
	}
	return RenderBox(p.Title, strings.Join(lines, "\n"))
}
