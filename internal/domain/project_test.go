package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectPatch_AppliesOnlySetFields(t *testing.T) {
	p := Project{ID: "p1", Title: "Old", Description: "desc", Date: "2023-01-01", Images: []string{"a"}}
	imgs := []string{"b", "c"}

	got := ProjectPatch{Title: strPtr("New"), Images: &imgs}.Apply(p)

	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, "2023-01-01", got.Date)
	assert.Equal(t, []string{"b", "c"}, got.Images)

	// The patch slice is copied, not aliased.
	imgs[0] = "mutated"
	assert.Equal(t, "b", got.Images[0])
}

func TestProjectPatch_Empty(t *testing.T) {
	assert.True(t, ProjectPatch{}.Empty())
	assert.False(t, ProjectPatch{Date: strPtr("2024-01-01")}.Empty())
}

func TestLayoutPatch_MergesPartial(t *testing.T) {
	carousel := LayoutCarousel
	got := LayoutPatch{TimelineLayout: &carousel}.Apply(DefaultLayoutPreferences())

	assert.Equal(t, LayoutGrid, got.ProjectLayout)
	assert.Equal(t, LayoutCarousel, got.TimelineLayout)
	assert.True(t, got.ShowSampleContent)
}

func TestSortTimelineByDateDesc(t *testing.T) {
	entries := []TimelineEntry{
		{ID: "a", Date: "2022-05-15"},
		{ID: "b", Date: "not a date"},
		{ID: "c", Date: "2023-01-01"},
		{ID: "d", Date: "2022-06-30"},
	}

	sorted := SortTimelineByDateDesc(entries)

	ids := make([]string, len(sorted))
	for i, e := range sorted {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids)
	assert.Equal(t, "a", entries[0].ID, "input must not be reordered")
}

func TestNewID_TimestampPrefixAndUnique(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID(now)
		require.True(t, strings.HasPrefix(id, "loyw3v28"), "id %q", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestNewProfileID(t *testing.T) {
	assert.Equal(t, "user-1700000000000", NewProfileID(time.UnixMilli(1700000000000)))
}

func TestSampleDocument_SeedsFreshContent(t *testing.T) {
	now := time.Now()
	a := SampleDocument(Profile{Username: "a"}, now)
	b := SampleDocument(Profile{Username: "b"}, now)

	assert.Len(t, a.Projects, 2)
	assert.Len(t, a.Timeline, 2)
	assert.Len(t, a.Videos, 2)
	assert.Equal(t, AboutVertical, a.About.Layout)
	assert.Equal(t, DefaultLayoutPreferences(), a.LayoutPreferences)
	assert.Equal(t, CurrentSchemaVersion, a.SchemaVersion)

	a.Projects[0].Title = "changed"
	assert.Equal(t, "Brand Identity Design", b.Projects[0].Title)
}

func TestDocument_NormalizeFillsNilLists(t *testing.T) {
	d := &Document{Projects: []Project{{ID: "p"}}}
	d.Normalize()

	assert.NotNil(t, d.Timeline)
	assert.NotNil(t, d.Videos)
	assert.NotNil(t, d.Projects[0].Images)
}

func TestDocument_FindByID(t *testing.T) {
	d := &Document{
		Projects: []Project{{ID: "p1"}, {ID: "p2"}},
		Timeline: []TimelineEntry{{ID: "t1"}},
		Videos:   []VideoItem{{ID: "v1"}},
	}
	assert.Equal(t, 1, d.FindProject("p2"))
	assert.Equal(t, -1, d.FindProject("missing"))
	assert.Equal(t, 0, d.FindTimelineEntry("t1"))
	assert.Equal(t, 0, d.FindVideo("v1"))
	assert.Equal(t, -1, d.FindVideo("v2"))
}

func TestParseLayouts(t *testing.T) {
	_, ok := ParseLayoutKind("masonry")
	assert.True(t, ok)
	_, ok = ParseLayoutKind("list")
	assert.False(t, ok)
	_, ok = ParseAboutLayout("horizontal")
	assert.True(t, ok)
	_, ok = ParseAboutLayout("grid")
	assert.False(t, ok)
}

func TestTimestamp_RoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 678_900_000, time.UTC)
	ts := NewTimestamp(now)
	assert.Equal(t, now.Truncate(time.Millisecond), ts.Time())
	assert.Equal(t, ts, ts.Later(ts-1))
	assert.Equal(t, ts+5, ts.Later(ts+5))
}

func TestDocument_PublicHidesEmailAndSortsTimeline(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d := SampleDocument(Profile{ID: "user-1", Username: "Jane", Email: "jane@x.com"}, now)
	d.Projects = append(d.Projects, Project{ID: "abc", Title: "Mine"})

	v := d.Public()
	assert.Equal(t, "Jane", v.Username)
	assert.Len(t, v.Projects, 3)
	require.Len(t, v.Timeline, 2)
	assert.Equal(t, "sample-timeline-2", v.Timeline[0].ID)

	d.LayoutPreferences.ShowSampleContent = false
	v = d.Public()
	require.Len(t, v.Projects, 1)
	assert.Equal(t, "abc", v.Projects[0].ID)
	assert.Empty(t, v.Timeline)
	assert.Empty(t, v.Videos)
	assert.NotNil(t, v.Videos)
}

func TestIsSampleID(t *testing.T) {
	assert.True(t, IsSampleID("sample-project-1"))
	assert.True(t, IsSampleID("video-2"))
	assert.False(t, IsSampleID("loyw3v28abc"))
}

func TestYouTubeEmbed(t *testing.T) {
	tests := []struct {
		in    string
		embed string
		ok    bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ?t=4", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"https://vimeo.com/12345", "", false},
		{"https://youtu.be/short", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			embed, thumb, ok := YouTubeEmbed(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.embed, embed)
			if ok {
				assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", thumb)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	for _, s := range []string{"jane@x.com", "a.b+c@example.co.uk"} {
		assert.True(t, ValidEmail(s), s)
	}
	for _, s := range []string{"", "jane", "jane@", "@x.com", "Jane <jane@x.com>", " jane@x.com"} {
		assert.False(t, ValidEmail(s), s)
	}
}
