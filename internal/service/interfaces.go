package service

import (
	"context"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/imageenc"
)

// DocumentService owns the lifecycle of the whole portfolio document.
type DocumentService interface {
	Current(ctx context.Context) (*domain.Document, bool)
	Create(ctx context.Context, name, email string) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
	Clear(ctx context.Context) error
}

type SessionService interface {
	Login(ctx context.Context, name, email string) (*domain.Document, bool, error)
	Logout(ctx context.Context) error
}

type ProjectService interface {
	AddProject(ctx context.Context, p domain.NewProject) (domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (domain.Project, error)
	RemoveProject(ctx context.Context, id string) error
}

type TimelineService interface {
	AddTimelineEntry(ctx context.Context, e domain.NewTimelineEntry) (domain.TimelineEntry, error)
	UpdateTimelineEntry(ctx context.Context, id string, patch domain.TimelineEntryPatch) (domain.TimelineEntry, error)
	RemoveTimelineEntry(ctx context.Context, id string) error
}

type VideoService interface {
	ReplaceVideos(ctx context.Context, videos []domain.VideoItem) ([]domain.VideoItem, error)
	AddVideo(ctx context.Context, v domain.VideoItem) (domain.VideoItem, error)
	UpdateVideo(ctx context.Context, id string, patch domain.VideoPatch) (domain.VideoItem, error)
	RemoveVideo(ctx context.Context, id string) error
}

type SettingsService interface {
	SetAbout(ctx context.Context, about domain.AboutSection) error
	SetLayoutPreferences(ctx context.Context, patch domain.LayoutPatch) (domain.LayoutPreferences, error)
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error)
}

type ImageService interface {
	EncodeImage(ctx context.Context, path string) (string, error)
	EncodeImageAsync(ctx context.Context, path string) <-chan imageenc.Result
}

// Compile-time verification that *Store serves every interface.
var (
	_ DocumentService = (*Store)(nil)
	_ SessionService  = (*Store)(nil)
	_ ProjectService  = (*Store)(nil)
	_ TimelineService = (*Store)(nil)
	_ VideoService    = (*Store)(nil)
	_ SettingsService = (*Store)(nil)
	_ ImageService    = (*Store)(nil)
)
