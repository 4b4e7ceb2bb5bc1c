package domain

// CurrentSchemaVersion is written into every document the store saves.
const CurrentSchemaVersion = 1

// AboutSection is the markdown biography shown on the about page.
type AboutSection struct {
	Content string      `json:"content"`
	Image   string      `json:"image"`
	Layout  AboutLayout `json:"layout"`
}

// LayoutPreferences selects how the public portfolio arranges collections.
type LayoutPreferences struct {
	ProjectLayout     LayoutKind `json:"projectLayout"`
	TimelineLayout    LayoutKind `json:"timelineLayout"`
	ShowSampleContent bool       `json:"showSampleContent"`
}

// LayoutPatch merges into LayoutPreferences; nil fields keep their value.
type LayoutPatch struct {
	ProjectLayout     *LayoutKind
	TimelineLayout    *LayoutKind
	ShowSampleContent *bool
}

func (lp LayoutPatch) Apply(p LayoutPreferences) LayoutPreferences {
	if lp.ProjectLayout != nil {
		p.ProjectLayout = *lp.ProjectLayout
	}
	if lp.TimelineLayout != nil {
		p.TimelineLayout = *lp.TimelineLayout
	}
	p.ShowSampleContent = BoolOr(p.ShowSampleContent, lp.ShowSampleContent)
	return p
}

// DefaultLayoutPreferences are applied to new and migrated documents.
func DefaultLayoutPreferences() LayoutPreferences {
	return LayoutPreferences{
		ProjectLayout:     LayoutGrid,
		TimelineLayout:    LayoutMasonry,
		ShowSampleContent: true,
	}
}

// Document is the single persisted record holding one user's portfolio.
type Document struct {
	SchemaVersion     int               `json:"schemaVersion"`
	User              Profile           `json:"user"`
	Projects          []Project         `json:"projects"`
	Timeline          []TimelineEntry   `json:"timeline"`
	Videos            []VideoItem       `json:"videos"`
	About             AboutSection      `json:"about"`
	LayoutPreferences LayoutPreferences `json:"layoutPreferences"`
}

// FindProject returns the index of the project with the given id, or -1.
func (d *Document) FindProject(id string) int {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// FindTimelineEntry returns the index of the timeline entry with the given id, or -1.
func (d *Document) FindTimelineEntry(id string) int {
	for i := range d.Timeline {
		if d.Timeline[i].ID == id {
			return i
		}
	}
	return -1
}

// FindVideo returns the index of the video with the given id, or -1.
func (d *Document) FindVideo(id string) int {
	for i := range d.Videos {
		if d.Videos[i].ID == id {
			return i
		}
	}
	return -1
}

// Normalize replaces nil collections with empty ones so the document always
// serializes lists as [] rather than null.
func (d *Document) Normalize() {
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Timeline == nil {
		d.Timeline = []TimelineEntry{}
	}
	if d.Videos == nil {
		d.Videos = []VideoItem{}
	}
	for i := range d.Projects {
		if d.Projects[i].Images == nil {
			d.Projects[i].Images = []string{}
		}
	}
}
