package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/folio/internal/domain"
)

func TestSetAbout(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()
	loggedIn(t, s)

	about := domain.AboutSection{Content: "# Me", Image: "data:image/png;base64,AA", Layout: domain.AboutHorizontal}
	require.NoError(t, s.SetAbout(ctx, about))

	doc, _ := s.Current(ctx)
	assert.Equal(t, about, doc.About)

	err := s.SetAbout(ctx, domain.AboutSection{Layout: "diagonal"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetLayoutPreferences_MergesPartial(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()
	loggedIn(t, s)

	carousel := domain.LayoutCarousel
	prefs, err := s.SetLayoutPreferences(ctx, domain.LayoutPatch{TimelineLayout: &carousel})
	require.NoError(t, err)
	assert.Equal(t, domain.LayoutGrid, prefs.ProjectLayout)
	assert.Equal(t, domain.LayoutCarousel, prefs.TimelineLayout)
	assert.True(t, prefs.ShowSampleContent)

	off := false
	prefs, err = s.SetLayoutPreferences(ctx, domain.LayoutPatch{ShowSampleContent: &off})
	require.NoError(t, err)
	assert.Equal(t, domain.LayoutCarousel, prefs.TimelineLayout)
	assert.False(t, prefs.ShowSampleContent)

	bad := domain.LayoutKind("list")
	_, err = s.SetLayoutPreferences(ctx, domain.LayoutPatch{ProjectLayout: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	doc, _ := s.Current(ctx)
	assert.Equal(t, prefs, doc.LayoutPreferences)
}

func TestUpdateProfile(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()
	before := loggedIn(t, s).User

	name := "Jane Doe"
	got, err := s.UpdateProfile(ctx, domain.ProfilePatch{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Username)
	assert.Equal(t, before.Email, got.Email)
	assert.Equal(t, before.ID, got.ID)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)

	blank := "  "
	_, err = s.UpdateProfile(ctx, domain.ProfilePatch{Username: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)
	bad := "not-an-email"
	_, err = s.UpdateProfile(ctx, domain.ProfilePatch{Email: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
