package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/folio/internal/domain"
)

const (
	cardGap      = 2
	minCardWidth = 24
)

// Card renders a bordered card of the given outer width.
func Card(title, body string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(max(width-2, minCardWidth-2))

	content := StyleBold.Render(title)
	if body != "" {
		content += "\n" + body
	}
	return style.Render(content)
}

// columns returns how many cards of at least minCardWidth fit in width.
func columns(width int) int {
	if width <= 0 {
		width = 80
	}
	n := (width + cardGap) / (minCardWidth + cardGap)
	return max(1, min(n, 3))
}

// cardWidth is the outer width of each card when n share width.
func cardWidth(width, n int) int {
	if width <= 0 {
		width = 80
	}
	return max(minCardWidth, (width-(n-1)*cardGap)/n)
}

// Arrange lays out pre-rendered cards the way kind describes:
//   - grid: fixed rows, each row as tall as its tallest card
//   - masonry: columns, each card dropped into the currently shortest column
//   - carousel: the card at focus with a position indicator
func Arrange(kind domain.LayoutKind, cards []string, width, focus int) string {
	if len(cards) == 0 {
		return ""
	}
	switch kind {
	case domain.LayoutMasonry:
		return arrangeMasonry(cards, columns(width))
	case domain.LayoutCarousel:
		return arrangeCarousel(cards, focus)
	default:
		return arrangeGrid(cards, columns(width))
	}
}

func gap() string { return strings.Repeat(" ", cardGap) }

func arrangeGrid(cards []string, n int) string {
	var rows []string
	for i := 0; i < len(cards); i += n {
		end := min(i+n, len(cards))
		row := make([]string, 0, 2*(end-i))
		for j, c := range cards[i:end] {
			if j > 0 {
				row = append(row, gap())
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func arrangeMasonry(cards []string, n int) string {
	cols := make([][]string, n)
	heights := make([]int, n)
	for _, c := range cards {
		shortest := 0
		for i := 1; i < n; i++ {
			if heights[i] < heights[shortest] {
				shortest = i
			}
		}
		cols[shortest] = append(cols[shortest], c)
		heights[shortest] += lipgloss.Height(c)
	}

	parts := make([]string, 0, 2*n)
	for i, col := range cols {
		if len(col) == 0 {
			continue
		}
		if i > 0 {
			parts = append(parts, gap())
		}
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, col...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func arrangeCarousel(cards []string, focus int) string {
	if focus < 0 || focus >= len(cards) {
		focus = 0
	}
	dots := make([]string, len(cards))
	for i := range cards {
		if i == focus {
			dots[i] = StyleHeader.Render("●")
		} else {
			dots[i] = Dim("○")
		}
	}
	indicator := Dim("◀ ") + strings.Join(dots, " ") + Dim(" ▶")
	return cards[focus] + "\n" + indicator
}
