// Package publish serves the public, read-only view of the portfolio over
// HTTP.
package publish

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/folio/internal/domain"
)

// DocumentReader returns the current document, if any.
type DocumentReader interface {
	Current(ctx context.Context) (*domain.Document, bool)
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewRouter builds the gin engine for the public portfolio API. Every request
// reads the document afresh, so edits made through the CLI show up without a
// restart.
func NewRouter(docs DocumentReader, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &handler{docs: docs}
	api := r.Group("/api")
	api.Use(h.requireDocument)
	api.GET("/portfolio", h.portfolio)
	api.GET("/projects", h.projects)
	api.GET("/projects/:id", h.project)
	api.GET("/timeline", h.timeline)
	api.GET("/videos", h.videos)
	api.GET("/about", h.about)

	return r
}

const viewKey = "portfolio"

type handler struct {
	docs DocumentReader
}

// requireDocument loads the public view once per request and stores it on
// the context.
func (h *handler) requireDocument(c *gin.Context) {
	doc, ok := h.docs.Current(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "no portfolio published"})
		return
	}
	c.Set(viewKey, doc.Public())
	c.Next()
}

func view(c *gin.Context) domain.PublicPortfolio {
	return c.MustGet(viewKey).(domain.PublicPortfolio)
}

func (h *handler) portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, view(c))
}

func (h *handler) projects(c *gin.Context) {
	c.JSON(http.StatusOK, view(c).Projects)
}

func (h *handler) project(c *gin.Context) {
	id := c.Param("id")
	for _, p := range view(c).Projects {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "project not found"})
}

func (h *handler) timeline(c *gin.Context) {
	c.JSON(http.StatusOK, view(c).Timeline)
}

func (h *handler) videos(c *gin.Context) {
	c.JSON(http.StatusOK, view(c).Videos)
}

func (h *handler) about(c *gin.Context) {
	c.JSON(http.StatusOK, view(c).About)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "http_request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(started).Milliseconds(),
		)
	}
}

// Serve runs the router on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "serving portfolio", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
