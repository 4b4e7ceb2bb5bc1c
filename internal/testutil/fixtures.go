package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
)

// Clock is a settable time source for deterministic ids and timestamps.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at t.
func NewClock(t time.Time) *Clock {
	return &Clock{now: t}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t, backwards if needed.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// FixedTime is the default start of test clocks.
var FixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Document options
type DocumentOption func(*domain.Document)

func WithProjects(ps ...domain.Project) DocumentOption {
	return func(d *domain.Document) {
		d.Projects = ps
	}
}

func WithTimeline(es ...domain.TimelineEntry) DocumentOption {
	return func(d *domain.Document) {
		d.Timeline = es
	}
}

func WithVideos(vs ...domain.VideoItem) DocumentOption {
	return func(d *domain.Document) {
		d.Videos = vs
	}
}

func WithAbout(a domain.AboutSection) DocumentOption {
	return func(d *domain.Document) {
		d.About = a
	}
}

// NewTestDocument returns an empty document for username with default
// layout preferences.
func NewTestDocument(username string, opts ...DocumentOption) *domain.Document {
	ts := domain.NewTimestamp(FixedTime)
	d := &domain.Document{
		SchemaVersion: domain.CurrentSchemaVersion,
		User: domain.Profile{
			ID:        domain.NewProfileID(FixedTime),
			Username:  username,
			Email:     username + "@example.com",
			CreatedAt: ts,
		},
		About:             domain.AboutSection{Layout: domain.AboutVertical},
		LayoutPreferences: domain.DefaultLayoutPreferences(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Normalize()
	return d
}

func NewTestProject(id, title string) domain.Project {
	ts := domain.NewTimestamp(FixedTime)
	return domain.Project{
		ID:          id,
		Title:       title,
		Description: title + " description",
		Date:        "2024-01-15",
		Images:      []string{},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func NewTestTimelineEntry(id, title, date string) domain.TimelineEntry {
	return domain.TimelineEntry{
		ID:        id,
		Title:     title,
		Date:      date,
		CreatedAt: domain.NewTimestamp(FixedTime),
	}
}

func NewTestVideo(id, title string) domain.VideoItem {
	return domain.VideoItem{
		ID:       id,
		Title:    title,
		EmbedURL: "https://www.youtube.com/embed/" + id,
	}
}
