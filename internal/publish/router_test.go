package publish

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/service"
)

func newTestRouter(t *testing.T, login bool) (*gin.Engine, *service.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := service.NewStore(repository.NewMemoryDocumentRepo(), "")
	if login {
		_, err := store.Create(context.Background(), "Jane", "jane@x.com")
		require.NoError(t, err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(store, logger), store
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t, false)

	rr := get(t, r, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestNoDocumentIs404(t *testing.T) {
	r, _ := newTestRouter(t, false)

	for _, path := range []string{"/api/portfolio", "/api/projects", "/api/about"} {
		rr := get(t, r, path)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Error)
	}
}

func TestPortfolioOmitsEmail(t *testing.T) {
	r, _ := newTestRouter(t, true)

	rr := get(t, r, "/api/portfolio")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "jane@x.com")
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	var v domain.PublicPortfolio
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	assert.Equal(t, "Jane", v.Username)
	assert.Len(t, v.Projects, 2)
}

func TestProjectsAndProjectByID(t *testing.T) {
	r, store := newTestRouter(t, true)
	p, err := store.AddProject(context.Background(), domain.NewProject{Title: "Fresh"})
	require.NoError(t, err)

	rr := get(t, r, "/api/projects")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, p.ID, list[0].ID)

	rr = get(t, r, "/api/projects/"+p.ID)
	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Fresh", got.Title)

	rr = get(t, r, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTimelineIsSorted(t *testing.T) {
	r, _ := newTestRouter(t, true)

	rr := get(t, r, "/api/timeline")
	require.Equal(t, http.StatusOK, rr.Code)
	var entries []domain.TimelineEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "2022-06-30", entries[0].Date)
}

func TestVideosAndAbout(t *testing.T) {
	r, _ := newTestRouter(t, true)

	rr := get(t, r, "/api/videos")
	require.Equal(t, http.StatusOK, rr.Code)
	var videos []domain.VideoItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &videos))
	assert.Len(t, videos, 2)

	rr = get(t, r, "/api/about")
	require.Equal(t, http.StatusOK, rr.Code)
	var about domain.AboutSection
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &about))
	assert.Equal(t, domain.AboutVertical, about.Layout)
}

func TestEditsAreVisibleWithoutRestart(t *testing.T) {
	r, store := newTestRouter(t, true)
	off := false
	_, err := store.SetLayoutPreferences(context.Background(), domain.LayoutPatch{ShowSampleContent: &off})
	require.NoError(t, err)

	rr := get(t, r, "/api/projects")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	r, _ := newTestRouter(t, false)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr, r, slog.New(slog.NewTextHandler(io.Discard, nil))) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
