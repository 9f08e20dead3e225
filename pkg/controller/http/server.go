package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	slackCtrl "github.com/secmon-lab/atodeyomu/pkg/controller/slack"
	"github.com/secmon-lab/atodeyomu/pkg/utils/metrics"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	slackHandler *slackCtrl.Handler,
	installHandler *InstallHandler,
	m *metrics.Metrics,
) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.StripSlashes)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)
	router.Handle("/metrics", m.Handler())

	router.Route("/v1", func(r chi.Router) {
		r.Post("/actions", slackHandler.HandleAction)
		r.Post("/events", slackHandler.HandleEvent)
		r.Get("/authorize", installHandler.HandleAuthorize)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "atodeyomu",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
