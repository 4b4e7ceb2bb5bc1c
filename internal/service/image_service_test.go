package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/folio/internal/imageenc"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestEncodeImage(t *testing.T) {
	obs := &recordingObserver{}
	s, _, _ := setupStore(t, WithObserver(obs))
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	uri, err := s.EncodeImage(ctx, path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Equal(t, []string{"encode_image"}, obs.names())
	assert.Equal(t, "cover.png", obs.events[0].Fields["file"])
}

func TestEncodeImage_Failures(t *testing.T) {
	s, _, _ := setupStore(t, WithImageEncoder(imageenc.New(4)))
	ctx := context.Background()
	dir := t.TempDir()

	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(big, pngHeader, 0o600))
	_, err := s.EncodeImage(ctx, big)
	assert.ErrorIs(t, err, ErrImageEncoding)

	_, err = s.EncodeImage(ctx, filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, ErrImageEncoding)
}

func TestEncodeImageAsync(t *testing.T) {
	s, _, _ := setupStore(t)
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	res := <-s.EncodeImageAsync(context.Background(), path)
	require.NoError(t, res.Err)
	assert.True(t, strings.HasPrefix(res.URI, "data:image/png;base64,"))
}
