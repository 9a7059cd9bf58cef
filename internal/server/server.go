// Package server exposes the aggregated portfolio data as a JSON API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aryanbv/folio/internal/aggregate"
	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/store"
)

// DefaultShowcaseLimit caps the live repositories merged into /api/projects.
const DefaultShowcaseLimit = 6

// ContributionSource produces heatmap buckets on demand.
type ContributionSource interface {
	Contributions(ctx context.Context, days int) ([]profile.ContributionDay, error)
}

// ContactStore records contact-form submissions.
type ContactStore interface {
	InsertContactMessage(name, email, message string) (*store.ContactMessage, error)
}

// Deps are the collaborators of the API. Contributions and Store are
// optional.
type Deps struct {
	Aggregator    *aggregate.Aggregator
	Contributions ContributionSource
	Catalog       *catalog.Catalog
	Store         ContactStore
	Logger        *slog.Logger
	ShowcaseLimit int
	Mode          string
}

type handlers struct {
	Deps
}

// New builds the gin engine with every route registered.
func New(deps Deps) *gin.Engine {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.ShowcaseLimit <= 0 {
		deps.ShowcaseLimit = DefaultShowcaseLimit
	}
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(deps.Logger))

	h := &handlers{Deps: deps}
	r.GET("/healthz", h.health)

	api := r.Group("/api")
	api.GET("/github", h.snapshot(profile.SourceGitHub))
	api.GET("/leetcode", h.snapshot(profile.SourceLeetCode))
	api.GET("/projects", h.projects)
	api.GET("/repositories", h.repositories)
	api.GET("/tech", h.tech)
	api.GET("/certificates", h.certificates)
	api.GET("/timeline", h.timeline)
	api.GET("/platforms", h.platforms)
	api.GET("/contributions", h.contributions)
	api.POST("/contact", h.contact)

	return r
}

// requestLogger replaces gin's default logger with structured records.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
