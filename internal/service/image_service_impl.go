package service

import (
	"context"
	"path/filepath"

	"github.com/alexanderramin/folio/internal/imageenc"
)

// EncodeImage reads the image at path and returns it as a data URI. Errors
// match ErrImageEncoding.
func (s *Store) EncodeImage(ctx context.Context, path string) (string, error) {
	var uri string
	err := s.observe(ctx, "encode_image", map[string]any{"file": filepath.Base(path)}, func() error {
		var err error
		uri, err = s.images.EncodeFile(ctx, path)
		return err
	})
	return uri, err
}

// EncodeImageAsync encodes path in the background. The channel delivers one
// result.
func (s *Store) EncodeImageAsync(ctx context.Context, path string) <-chan imageenc.Result {
	return s.images.EncodeAsync(ctx, path)
}
