package domain

import (
	"sort"
	"time"
)

// TimelineEntry is a dated milestone shown on the timeline page.
type TimelineEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Image       string    `json:"image"`
	CreatedAt   Timestamp `json:"createdAt"`
}

type NewTimelineEntry struct {
	Title       string
	Description string
	Date        string
	Image       string
}

// TimelineEntryPatch updates only the non-nil fields of an entry.
type TimelineEntryPatch struct {
	Title       *string
	Description *string
	Date        *string
	Image       *string
}

func (tp TimelineEntryPatch) Apply(e TimelineEntry) TimelineEntry {
	e.Title = StrOr(e.Title, tp.Title)
	e.Description = StrOr(e.Description, tp.Description)
	e.Date = StrOr(e.Date, tp.Date)
	e.Image = StrOr(e.Image, tp.Image)
	return e
}

// SortTimelineByDateDesc returns a copy of entries ordered newest date first.
// Dates that fail to parse sort after every parsable date; ties keep their
// stored order.
func SortTimelineByDateDesc(entries []TimelineEntry) []TimelineEntry {
	out := make([]TimelineEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := parseEntryDate(out[i].Date)
		tj, okJ := parseEntryDate(out[j].Date)
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
	return out
}

var entryDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01", "2006"}

func parseEntryDate(s string) (time.Time, bool) {
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
