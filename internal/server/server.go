// Package server assembles all HTTP handlers and starts the server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/matthewbaird/showcase/internal/activity"
	"github.com/matthewbaird/showcase/internal/event"
	"github.com/matthewbaird/showcase/internal/handler"
	"github.com/matthewbaird/showcase/internal/listing"
	"github.com/matthewbaird/showcase/internal/portfolio"
	"github.com/matthewbaird/showcase/internal/resume"
	"github.com/matthewbaird/showcase/internal/session"
	"github.com/matthewbaird/showcase/internal/watch"
	"go.uber.org/zap"
)

// Deps holds everything the router serves.
type Deps struct {
	Catalog    *listing.Catalog
	Portfolios portfolio.Store
	Resumes    resume.Store
	Sessions   *session.Manager
	Activity   activity.Store
	Recorder   event.Recorder
	Hub        *watch.Hub
	Logger     *zap.Logger
}

// NewRouter registers every route on a chi router.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(handler.Recovery(d.Logger))
	r.Use(handler.Logging(d.Logger))

	r.Get("/healthz", handler.Health)

	// --- Properties ---
	ph := handler.NewPropertyHandler(d.Catalog, d.Recorder)
	r.Get("/v1/property-types", ph.ListPropertyTypes)
	r.Route("/v1/properties", func(r chi.Router) {
		r.Get("/", ph.ListProperties)
		r.Post("/", ph.CreateProperty)
		r.Get("/watch", watch.NewHandler(d.Catalog, d.Hub, d.Logger).ServeHTTP)
		r.Get("/{id}", ph.GetProperty)
	})

	// --- Portfolios ---
	pfh := handler.NewPortfolioHandler(d.Sessions, d.Portfolios, d.Recorder)
	r.Route("/v1/portfolio-drafts", func(r chi.Router) {
		r.Post("/", pfh.CreateDraft)
		r.Get("/{id}", pfh.GetDraft)
		r.Patch("/{id}", pfh.UpdateDraft)
		r.Delete("/{id}", pfh.DeleteDraft)
		r.Post("/{id}/next", pfh.NextStep)
		r.Post("/{id}/previous", pfh.PreviousStep)
		r.Post("/{id}/submit", pfh.SubmitDraft)
	})
	r.Get("/v1/portfolios", pfh.ListPortfolios)
	r.Get("/v1/portfolios/{id}", pfh.GetPortfolio)
	r.Get("/v1/portfolio-skills", pfh.ListSkills)

	// --- Resume builder ---
	rh := handler.NewResumeHandler(d.Resumes)
	r.Get("/v1/resume-templates", rh.ListTemplates)
	r.Route("/v1/resumes", func(r chi.Router) {
		r.Post("/", rh.CreateResume)
		r.Get("/{id}", rh.GetResume)
		r.Patch("/{id}", rh.UpdateResume)
		r.Delete("/{id}", rh.DeleteResume)
		r.Get("/{id}/preview", rh.PreviewResume)
	})

	// --- Activity ---
	ah := handler.NewActivityHandler(d.Activity)
	r.Get("/v1/activity", ah.GetActivity)

	return r
}

// Config holds server configuration.
type Config struct {
	Port            int
	ShutdownTimeout time.Duration
}

// Run serves h until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg Config, h http.Handler, log *zap.Logger) error {
	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	log.Info("shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
