package imageenc

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestEncode_PNG(t *testing.T) {
	uri, err := New(0).Encode(context.Background(), strings.NewReader(string(pngBytes)), "cover.png")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), uri)
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, payload)
}

func TestEncode_SVGByExtension(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`
	uri, err := New(0).Encode(context.Background(), strings.NewReader(svg), "logo.svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"), uri)
}

func TestEncode_Failures(t *testing.T) {
	enc := New(16)
	cases := map[string]struct {
		data string
		name string
	}{
		"not an image":     {data: "hello world", name: "notes.txt"},
		"empty":            {data: "", name: "empty.png"},
		"too large":        {data: string(pngBytes), name: "big.png"},
		"fake svg content": {data: "plain text", name: "fake.svg"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := enc.Encode(context.Background(), strings.NewReader(tc.data), tc.name)
			assert.ErrorIs(t, err, ErrEncoding)
		})
	}
}

func TestEncode_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(0).Encode(ctx, strings.NewReader(string(pngBytes)), "a.png")
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeFile_Missing(t *testing.T) {
	_, err := New(0).EncodeFile(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeAsync_DeliversOneResult(t *testing.T) {
	path := writeFile(t, "a.png", pngBytes)

	ch := New(0).EncodeAsync(context.Background(), path)
	select {
	case res, ok := <-ch:
		require.True(t, ok)
		require.NoError(t, res.Err)
		assert.True(t, strings.HasPrefix(res.URI, "data:image/png;base64,"))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for async encode")
	}

	_, ok := <-ch
	assert.False(t, ok, "channel closes after the single result")
}

func TestEncodeAsync_AbandonedCallerDoesNotLeak(t *testing.T) {
	path := writeFile(t, "a.png", pngBytes)
	_ = New(0).EncodeAsync(context.Background(), path)
	// goleak.VerifyTestMain fails the package if the goroutine never exits.
}

func TestEncodeAsync_Failure(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("text"))
	res := <-New(0).EncodeAsync(context.Background(), path)
	assert.ErrorIs(t, res.Err, ErrEncoding)
	assert.Empty(t, res.URI)
}
