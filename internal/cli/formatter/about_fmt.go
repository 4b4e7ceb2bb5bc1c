package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/folio/internal/domain"
)

// FormatAbout renders the about section according to its layout: image
// above the text, image beside the text, or the text split into slides at
// each second-level heading.
func FormatAbout(about domain.AboutSection, width int) string {
	if width <= 0 {
		width = 80
	}
	image := ""
	if about.Image != "" {
		image = Dim("image: ") + ImageRef(about.Image)
	}

	switch about.Layout {
	case domain.AboutHorizontal:
		side := min(30, width/3)
		left := lipgloss.NewStyle().Width(side).Render(image)
		right := RenderMarkdown(about.Content, width-side-cardGap)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, gap(), right)
	case domain.AboutCarousel:
		slides := splitSlides(about.Content)
		cards := make([]string, len(slides))
		for i, s := range slides {
			cards[i] = RenderMarkdown(s, width)
		}
		out := Arrange(domain.LayoutCarousel, cards, width, 0)
		if image != "" {
			out = image + "\n" + out
		}
		return out
	default:
		body := RenderMarkdown(about.Content, width)
		if image != "" {
			return image + "\n\n" + body
		}
		return body
	}
}

// splitSlides cuts markdown before each "## " heading.
func splitSlides(md string) []string {
	var slides []string
	var cur []string
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "## ") && len(cur) > 0 {
			slides = append(slides, strings.Join(cur, "\n"))
			cur = nil
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		slides = append(slides, strings.Join(cur, "\n"))
	}
	return slides
}
