package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/folio/internal/domain"
)

// Login resumes the stored document when one exists and otherwise creates a
// seeded one for name and email. created reports which happened.
func (s *Store) Login(ctx context.Context, name, email string) (*domain.Document, bool, error) {
	doc, _, err := s.load(ctx)
	if err == nil {
		s.logger.InfoContext(ctx, "resumed session", "user", doc.User.Username)
		return doc, false, nil
	}
	if !errors.Is(err, ErrNoActiveSession) {
		return nil, false, err
	}

	doc, err = s.Create(ctx, name, email)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// Logout removes the document; logging out twice is not an error.
func (s *Store) Logout(ctx context.Context) error {
	return s.Clear(ctx)
}
