package domain

import "strings"

var sampleVideoIDs = map[string]bool{"video-1": true, "video-2": true}

// IsSampleID reports whether id belongs to seeded sample content.
func IsSampleID(id string) bool {
	return strings.HasPrefix(id, "sample-") || sampleVideoIDs[id]
}

// PublicPortfolio is the read-only view of a document shown to visitors.
// It omits the email and profile id.
type PublicPortfolio struct {
	Username          string            `json:"username"`
	About             AboutSection      `json:"about"`
	Projects          []Project         `json:"projects"`
	Timeline          []TimelineEntry   `json:"timeline"`
	Videos            []VideoItem       `json:"videos"`
	LayoutPreferences LayoutPreferences `json:"layoutPreferences"`
}

// Public builds the visitor view of d. The timeline is sorted newest
// first, and sample content is dropped when the owner turned it off.
func (d *Document) Public() PublicPortfolio {
	keep := func(id string) bool {
		return d.LayoutPreferences.ShowSampleContent || !IsSampleID(id)
	}
	v := PublicPortfolio{
		Username:          d.User.Username,
		About:             d.About,
		Projects:          []Project{},
		Timeline:          []TimelineEntry{},
		Videos:            []VideoItem{},
		LayoutPreferences: d.LayoutPreferences,
	}
	for _, p := range d.Projects {
		if keep(p.ID) {
			v.Projects = append(v.Projects, p)
		}
	}
	for _, e := range SortTimelineByDateDesc(d.Timeline) {
		if keep(e.ID) {
			v.Timeline = append(v.Timeline, e)
		}
	}
	for _, vid := range d.Videos {
		if keep(vid.ID) {
			v.Videos = append(v.Videos, vid)
		}
	}
	return v
}
