package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/testutil"
)

func TestLogin_JaneJourney(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	doc, created, err := s.Login(ctx, "Jane", "jane@x.com")
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, doc.Projects, 2)
	firstSeeded := doc.Projects[0].ID

	added, err := s.AddProject(ctx, domain.NewProject{
		Title:      "New Work",
		Date:       "2024-01-01",
		CoverImage: "data:image/png;base64,AAAA",
		Images:     []string{"data:image/png;base64,BBBB"},
	})
	require.NoError(t, err)

	doc, ok := s.Current(ctx)
	require.True(t, ok)
	require.Len(t, doc.Projects, 3)
	assert.Equal(t, added.ID, doc.Projects[0].ID, "new project is first")
	assert.Equal(t, "New Work", doc.Projects[0].Title)

	require.NoError(t, s.RemoveProject(ctx, firstSeeded))

	doc, ok = s.Current(ctx)
	require.True(t, ok)
	require.Len(t, doc.Projects, 2)
	assert.Equal(t, added.ID, doc.Projects[0].ID)
	assert.Equal(t, -1, doc.FindProject(firstSeeded))
}

func TestAddProject_StampsAndPrepends(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()
	loggedIn(t, s)

	p, err := s.AddProject(ctx, domain.NewProject{Title: "Poster", Images: []string{"a"}})
	require.NoError(t, err)

	want := domain.NewTimestamp(testutil.FixedTime)
	assert.Equal(t, want, p.CreatedAt)
	assert.Equal(t, want, p.UpdatedAt)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{"a"}, p.Images)
}

func TestAddProject_RequiresTitle(t *testing.T) {
	s, _, _ := setupStore(t)
	loggedIn(t, s)

	_, err := s.AddProject(context.Background(), domain.NewProject{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveProject_TwiceIsNotFound(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()
	loggedIn(t, s)

	require.NoError(t, s.RemoveProject(ctx, "sample-project-2"))
	doc, _ := s.Current(ctx)
	assert.Len(t, doc.Projects, 1)

	err := s.RemoveProject(ctx, "sample-project-2")
	assert.ErrorIs(t, err, ErrNotFound)
	doc, _ = s.Current(ctx)
	assert.Len(t, doc.Projects, 1)
}

func TestUpdateProject_MergesPatch(t *testing.T) {
	s, clock, _ := setupStore(t)
	ctx := context.Background()
	before := loggedIn(t, s).Projects[0]

	clock.Advance(time.Hour)
	title := "Renamed"
	got, err := s.UpdateProject(ctx, before.ID, domain.ProjectPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, before.Description, got.Description)
	assert.Equal(t, before.Images, got.Images)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
	assert.Equal(t, domain.NewTimestamp(clock.Now()), got.UpdatedAt)

	doc, _ := s.Current(ctx)
	assert.Equal(t, got, doc.Projects[0])
}

func TestUpdateProject_UpdatedAtNeverDecreases(t *testing.T) {
	s, clock, _ := setupStore(t)
	ctx := context.Background()
	loggedIn(t, s)

	p, err := s.AddProject(ctx, domain.NewProject{Title: "x"})
	require.NoError(t, err)

	clock.Set(testutil.FixedTime.Add(-48 * time.Hour))
	desc := "later edit with a clock that went backwards"
	got, err := s.UpdateProject(ctx, p.ID, domain.ProjectPatch{Description: &desc})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int64(got.UpdatedAt), int64(p.UpdatedAt))
}

func TestUpdateProject_Errors(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()
	loggedIn(t, s)

	empty := ""
	_, err := s.UpdateProject(ctx, "sample-project-1", domain.ProjectPatch{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)

	title := "x"
	_, err = s.UpdateProject(ctx, "nope", domain.ProjectPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}
