package formatter

import (
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
)

// FormatTimelineList renders timeline entries as a table, in the order given.
func FormatTimelineList(entries []domain.TimelineEntry) string {
	headers := []string{"ID", "DATE", "TITLE", "DESCRIPTION"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.ID, DisplayDate(e.Date), Bold(e.Title), e.Description})
	}
	return RenderBox("Timeline", RenderTable(headers, rows))
}

// FormatTimeline renders entries as dated cards arranged by kind. Callers
// pass entries already sorted for display.
func FormatTimeline(entries []domain.TimelineEntry, kind domain.LayoutKind, width int) string {
	if len(entries) == 0 {
		return Dim("No timeline entries yet.")
	}
	n := columns(width)
	if kind == domain.LayoutCarousel {
		n = 1
	}
	w := cardWidth(width, n)
	cards := make([]string, len(entries))
	for i, e := range entries {
		body := []string{StyleYellow.Render(DisplayDate(e.Date))}
		if e.Description != "" {
			body = append(body, e.Description)
		}
		if e.Image != "" {
			body = append(body, Dim("image: ")+ImageRef(e.Image))
		}
		cards[i] = Card(e.Title, strings.Join(body, "\n"), w)
	}
	return Arrange(kind, cards, width, 0)
}
