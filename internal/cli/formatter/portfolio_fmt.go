package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/folio/internal/domain"
)

// FormatPortfolio renders the public portfolio page for a terminal of the
// given width.
func FormatPortfolio(v domain.PublicPortfolio, width int) string {
	if width <= 0 {
		width = 80
	}
	title := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).
		Render(fmt.Sprintf("%s's Portfolio", v.Username))

	sections := []string{
		title,
		Header("About") + "\n" + FormatAbout(v.About, width),
		Header("Projects") + "  " + LayoutBadge(v.LayoutPreferences.ProjectLayout) + "\n" +
			FormatProjectCards(v.Projects, v.LayoutPreferences.ProjectLayout, width),
		Header("Timeline") + "  " + LayoutBadge(v.LayoutPreferences.TimelineLayout) + "\n" +
			FormatTimeline(v.Timeline, v.LayoutPreferences.TimelineLayout, width),
	}
	if len(v.Videos) > 0 {
		lines := make([]string, len(v.Videos))
		for i, vid := range v.Videos {
			lines[i] = fmt.Sprintf("▶ %s  %s", Bold(vid.Title), Dim(vid.EmbedURL))
		}
		sections = append(sections, Header("Videos")+"\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}
