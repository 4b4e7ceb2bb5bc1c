package formatter

import (
	"github.com/alexanderramin/folio/internal/domain"
)

// FormatVideoList renders videos as a table inside a bordered box.
func FormatVideoList(videos []domain.VideoItem) string {
	headers := []string{"ID", "TITLE", "EMBED", "SOURCE"}
	rows := make([][]string, 0, len(videos))
	for _, v := range videos {
		source := StyleBlue.Render("remote")
		if v.IsLocal {
			source = StyleGreen.Render("local")
		}
		rows = append(rows, []string{v.ID, Bold(v.Title), v.EmbedURL, source})
	}
	return RenderBox("Videos", RenderTable(headers, rows))
}
