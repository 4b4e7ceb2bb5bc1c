package domain

// Project is a portfolio piece with a cover image and a gallery.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CoverImage  string    `json:"coverImage"`
	Images      []string  `json:"images"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// NewProject carries the caller-supplied fields of a project. The store
// assigns the id and timestamps.
type NewProject struct {
	Title       string
	Description string
	Date        string
	CoverImage  string
	Images      []string
}

// ProjectPatch updates only the non-nil fields of a project.
type ProjectPatch struct {
	Title       *string
	Description *string
	Date        *string
	CoverImage  *string
	Images      *[]string
}

// Apply returns p with the patch applied. UpdatedAt is left to the caller.
func (pp ProjectPatch) Apply(p Project) Project {
	p.Title = StrOr(p.Title, pp.Title)
	p.Description = StrOr(p.Description, pp.Description)
	p.Date = StrOr(p.Date, pp.Date)
	p.CoverImage = StrOr(p.CoverImage, pp.CoverImage)
	p.Images = StringsOr(p.Images, pp.Images)
	return p
}

// Empty reports whether the patch would change nothing.
func (pp ProjectPatch) Empty() bool {
	return pp.Title == nil && pp.Description == nil && pp.Date == nil &&
		pp.CoverImage == nil && pp.Images == nil
}
