package domain

// LayoutKind controls how project and timeline collections are arranged.
type LayoutKind string

const (
	LayoutGrid     LayoutKind = "grid"
	LayoutMasonry  LayoutKind = "masonry"
	LayoutCarousel LayoutKind = "carousel"
)

// ValidLayoutKinds is the canonical set of accepted collection layouts.
var ValidLayoutKinds = map[LayoutKind]bool{
	LayoutGrid: true, LayoutMasonry: true, LayoutCarousel: true,
}

// AboutLayout controls how the about section places its image and text.
type AboutLayout string

const (
	AboutVertical   AboutLayout = "vertical"
	AboutHorizontal AboutLayout = "horizontal"
	AboutCarousel   AboutLayout = "carousel"
)

// ValidAboutLayouts is the canonical set of accepted about layouts.
var ValidAboutLayouts = map[AboutLayout]bool{
	AboutVertical: true, AboutHorizontal: true, AboutCarousel: true,
}

// ParseLayoutKind validates s as a collection layout.
func ParseLayoutKind(s string) (LayoutKind, bool) {
	k := LayoutKind(s)
	return k, ValidLayoutKinds[k]
}

// ParseAboutLayout validates s as an about layout.
func ParseAboutLayout(s string) (AboutLayout, bool) {
	l := AboutLayout(s)
	return l, ValidAboutLayouts[l]
}
