package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/folio/internal/domain"
)

// requiredInput returns a huh.Input that rejects blank values.
func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateRequired)
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2024-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// imageInput returns a huh.Input for an image reference.
func imageInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("./cover.png").
		Value(value)
}

// layoutSelect returns a huh.Select over the list layouts.
func layoutSelect(title string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(
			huh.NewOption("Grid", string(domain.LayoutGrid)),
			huh.NewOption("Masonry", string(domain.LayoutMasonry)),
			huh.NewOption("Carousel", string(domain.LayoutCarousel)),
		).
		Value(value)
}

// aboutLayoutSelect returns a huh.Select over the about-section layouts.
func aboutLayoutSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("About layout").
		Options(
			huh.NewOption("Vertical", string(domain.AboutVertical)),
			huh.NewOption("Horizontal", string(domain.AboutHorizontal)),
			huh.NewOption("Carousel", string(domain.AboutCarousel)),
		).
		Value(value)
}
