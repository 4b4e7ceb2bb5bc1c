package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
)

// AddProject prepends a new project and returns it with its id and
// timestamps assigned.
func (s *Store) AddProject(ctx context.Context, in domain.NewProject) (domain.Project, error) {
	var created domain.Project
	err := s.observe(ctx, "add_project", nil, func() error {
		if in.Title == "" {
			return invalid("project title is required")
		}
		return s.mutate(ctx, func(doc *domain.Document, now domain.Timestamp) error {
			created = domain.Project{
				ID:          domain.NewID(now.Time()),
				Title:       in.Title,
				Description: in.Description,
				Date:        in.Date,
				CoverImage:  in.CoverImage,
				Images:      append([]string{}, in.Images...),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			doc.Projects = append([]domain.Project{created}, doc.Projects...)
			return nil
		})
	})
	return created, err
}

// UpdateProject applies patch to the project with the given id and stamps
// UpdatedAt. The id and CreatedAt never change.
func (s *Store) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (domain.Project, error) {
	var updated domain.Project
	err := s.observe(ctx, "update_project", map[string]any{"project_id": id}, func() error {
		if patch.Title != nil && *patch.Title == "" {
			return invalid("project title cannot be empty")
		}
		return s.mutate(ctx, func(doc *domain.Document, now domain.Timestamp) error {
			i := doc.FindProject(id)
			if i < 0 {
				return fmt.Errorf("project %q: %w", id, ErrNotFound)
			}
			p := patch.Apply(doc.Projects[i])
			p.UpdatedAt = p.UpdatedAt.Later(now)
			doc.Projects[i] = p
			updated = p
			return nil
		})
	})
	return updated, err
}

// RemoveProject deletes the project with the given id.
func (s *Store) RemoveProject(ctx context.Context, id string) error {
	return s.observe(ctx, "remove_project", map[string]any{"project_id": id}, func() error {
		return s.mutate(ctx, func(doc *domain.Document, _ domain.Timestamp) error {
			i := doc.FindProject(id)
			if i < 0 {
				return fmt.Errorf("project %q: %w", id, ErrNotFound)
			}
			doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
			return nil
		})
	})
}
