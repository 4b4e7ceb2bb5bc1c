package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
)

// ReplaceVideos swaps the whole video list for videos. Items without an id
// get one; duplicate ids are rejected.
func (s *Store) ReplaceVideos(ctx context.Context, videos []domain.VideoItem) ([]domain.VideoItem, error) {
	var stored []domain.VideoItem
	err := s.observe(ctx, "replace_videos", map[string]any{"count": len(videos)}, func() error {
		return s.mutate(ctx, func(doc *domain.Document, now domain.Timestamp) error {
			list := make([]domain.VideoItem, len(videos))
			seen := make(map[string]bool, len(videos))
			for i, v := range videos {
				if v.ID == "" {
					v.ID = domain.NewID(now.Time())
				}
				if seen[v.ID] {
					return invalid("duplicate video id %q", v.ID)
				}
				seen[v.ID] = true
				list[i] = v
			}
			doc.Videos = list
			stored = append([]domain.VideoItem(nil), list...)
			return nil
		})
	})
	return stored, err
}

// AddVideo prepends v with a fresh id; any id on v is ignored.
func (s *Store) AddVideo(ctx context.Context, v domain.VideoItem) (domain.VideoItem, error) {
	var created domain.VideoItem
	err := s.observe(ctx, "add_video", nil, func() error {
		if v.Title == "" {
			return invalid("video title is required")
		}
		if v.EmbedURL == "" {
			return invalid("video embed URL is required")
		}
		return s.mutate(ctx, func(doc *domain.Document, now domain.Timestamp) error {
			v.ID = domain.NewID(now.Time())
			doc.Videos = append([]domain.VideoItem{v}, doc.Videos...)
			created = v
			return nil
		})
	})
	return created, err
}

func (s *Store) UpdateVideo(ctx context.Context, id string, patch domain.VideoPatch) (domain.VideoItem, error) {
	var updated domain.VideoItem
	err := s.observe(ctx, "update_video", map[string]any{"video_id": id}, func() error {
		if patch.Title != nil && *patch.Title == "" {
			return invalid("video title cannot be empty")
		}
		if patch.EmbedURL != nil && *patch.EmbedURL == "" {
			return invalid("video embed URL cannot be empty")
		}
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			i := doc.FindVideo(id)
			if i < 0 {
				return fmt.Errorf("video %q: %w", id, ErrNotFound)
			}
			doc.Videos[i] = patch.Apply(doc.Videos[i])
			updated = doc.Videos[i]
			return nil
		})
	})
	return updated, err
}

func (s *Store) RemoveVideo(ctx context.Context, id string) error {
	return s.observe(ctx, "remove_video", map[string]any{"video_id": id}, func() error {
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			i := doc.FindVideo(id)
			if i < 0 {
				return fmt.Errorf("video %q: %w", id, ErrNotFound)
			}
			doc.Videos = append(doc.Videos[:i], doc.Videos[i+1:]...)
			return nil
		})
	})
}
