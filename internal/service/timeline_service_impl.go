package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
)

func (s *Store) AddTimelineEntry(ctx context.Context, in domain.NewTimelineEntry) (domain.TimelineEntry, error) {
	var created domain.TimelineEntry
	err := s.observe(ctx, "add_timeline_entry", nil, func() error {
		if in.Title == "" {
			return invalid("timeline entry title is required")
		}
		return s.mutate(ctx, func(doc *domain.Document, now domain.Timestamp) error {
			created = domain.TimelineEntry{
				ID:          domain.NewID(now.Time()),
				Title:       in.Title,
				Description: in.Description,
				Date:        in.Date,
				Image:       in.Image,
				CreatedAt:   now,
			}
			doc.Timeline = append([]domain.TimelineEntry{created}, doc.Timeline...)
			return nil
		})
	})
	return created, err
}

// UpdateTimelineEntry applies patch to the entry with the given id. Timeline
// entries carry no updatedAt, so nothing is stamped.
func (s *Store) UpdateTimelineEntry(ctx context.Context, id string, patch domain.TimelineEntryPatch) (domain.TimelineEntry, error) {
	var updated domain.TimelineEntry
	err := s.observe(ctx, "update_timeline_entry", map[string]any{"entry_id": id}, func() error {
		if patch.Title != nil && *patch.Title == "" {
			return invalid("timeline entry title cannot be empty")
		}
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			i := doc.FindTimelineEntry(id)
			if i < 0 {
				return fmt.Errorf("timeline entry %q: %w", id, ErrNotFound)
			}
			doc.Timeline[i] = patch.Apply(doc.Timeline[i])
			updated = doc.Timeline[i]
			return nil
		})
	})
	return updated, err
}

func (s *Store) RemoveTimelineEntry(ctx context.Context, id string) error {
	return s.observe(ctx, "remove_timeline_entry", map[string]any{"entry_id": id}, func() error {
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			i := doc.FindTimelineEntry(id)
			if i < 0 {
				return fmt.Errorf("timeline entry %q: %w", id, ErrNotFound)
			}
			doc.Timeline = append(doc.Timeline[:i], doc.Timeline[i+1:]...)
			return nil
		})
	})
}
