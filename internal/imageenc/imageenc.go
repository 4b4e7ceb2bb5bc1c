// Package imageenc turns image files into base64 data URIs that can be stored
// inline in a portfolio document.
package imageenc

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxBytes caps a single encoded image at 5 MiB of raw input.
const DefaultMaxBytes int64 = 5 << 20

// ErrEncoding is wrapped by every failure to produce a data URI.
var ErrEncoding = errors.New("image encoding failed")

// Encoder converts image bytes to data URIs.
type Encoder struct {
	MaxBytes int64
}

// New returns an Encoder limited to maxBytes of input. A non-positive limit
// selects DefaultMaxBytes.
func New(maxBytes int64) *Encoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Encoder{MaxBytes: maxBytes}
}

// Result is the single value delivered by EncodeAsync.
type Result struct {
	URI string
	Err error
}

// Encode reads r to the end and returns data:<mime>;base64,<payload>. name
// is only used to guess the MIME type when content sniffing is inconclusive.
func (e *Encoder) Encode(ctx context.Context, r io.Reader, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	limit := e.maxBytes()
	data, err := io.ReadAll(io.LimitReader(&ctxReader{ctx: ctx, r: r}, limit+1))
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrEncoding, displayName(name), err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrEncoding, displayName(name), limit)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrEncoding, displayName(name))
	}

	mimeType, ok := detectImageType(data, name)
	if !ok {
		return "", fmt.Errorf("%w: %s is not an image (%s)", ErrEncoding, displayName(name), mimeType)
	}

	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String(), nil
}

// EncodeFile opens path and encodes its content.
func (e *Encoder) EncodeFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	defer f.Close()
	return e.Encode(ctx, f, path)
}

// EncodeAsync encodes path on its own goroutine. The returned channel
// receives exactly one Result and is then closed. A caller that stops
// listening does not leak the goroutine; the result is simply dropped.
func (e *Encoder) EncodeAsync(ctx context.Context, path string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		uri, err := e.EncodeFile(ctx, path)
		out <- Result{URI: uri, Err: err}
	}()
	return out
}

func (e *Encoder) maxBytes() int64 {
	if e == nil || e.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return e.MaxBytes
}

// detectImageType sniffs data and falls back to the file extension, which is
// needed for formats such as SVG that sniff as text.
func detectImageType(data []byte, name string) (string, bool) {
	sniffed := baseType(http.DetectContentType(data))
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed, true
	}
	if byExt := baseType(mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))); strings.HasPrefix(byExt, "image/") {
		if byExt == "image/svg+xml" && !bytes.Contains(data, []byte("<svg")) {
			return byExt, false
		}
		return byExt, true
	}
	return sniffed, false
}

func baseType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}

func displayName(name string) string {
	if name == "" {
		return "input"
	}
	return filepath.Base(name)
}

// ctxReader stops a read once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
