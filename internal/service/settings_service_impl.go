package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
)

// SetAbout replaces the about section.
func (s *Store) SetAbout(ctx context.Context, about domain.AboutSection) error {
	return s.observe(ctx, "set_about", nil, func() error {
		if !domain.ValidAboutLayouts[about.Layout] {
			return invalid("about layout %q must be vertical, horizontal or carousel", about.Layout)
		}
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			doc.About = about
			return nil
		})
	})
}

// SetLayoutPreferences merges patch into the stored preferences and returns
// the result.
func (s *Store) SetLayoutPreferences(ctx context.Context, patch domain.LayoutPatch) (domain.LayoutPreferences, error) {
	var prefs domain.LayoutPreferences
	err := s.observe(ctx, "set_layout_preferences", nil, func() error {
		for _, k := range []*domain.LayoutKind{patch.ProjectLayout, patch.TimelineLayout} {
			if k != nil && !domain.ValidLayoutKinds[*k] {
				return invalid("layout %q must be grid, masonry or carousel", *k)
			}
		}
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			doc.LayoutPreferences = patch.Apply(doc.LayoutPreferences)
			prefs = doc.LayoutPreferences
			return nil
		})
	})
	return prefs, err
}

// UpdateProfile changes the display name and email. The profile id and
// creation time are fixed at login.
func (s *Store) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error) {
	var profile domain.Profile
	err := s.observe(ctx, "update_profile", nil, func() error {
		if patch.Username != nil && strings.TrimSpace(*patch.Username) == "" {
			return invalid("username cannot be empty")
		}
		if patch.Email != nil && !domain.ValidEmail(*patch.Email) {
			return invalid("email %q is not an address", *patch.Email)
		}
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			doc.User = patch.Apply(doc.User)
			profile = doc.User
			return nil
		})
	})
	return profile, err
}
