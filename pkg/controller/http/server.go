package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/utils/apperr"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
	syncUC interfaces.SyncUseCase
}

// NewServer creates a new HTTP server exposing the sync trigger API
func NewServer(ctx context.Context, addr string, syncUC interfaces.SyncUseCase) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Post("/sync/{groupID}", handleSyncGroup(syncUC))
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
		syncUC: syncUC,
	}
}

// Router exposes the underlying router, used in tests
func (s *Server) Router() chi.Router {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "themis",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleSyncGroup triggers a sync run for the group in the URL path
func handleSyncGroup(syncUC interfaces.SyncUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := types.GroupID(chi.URLParam(r, "groupID"))
		if groupID == "" {
			http.Error(w, "group ID is required", http.StatusBadRequest)
			return
		}

		synced, err := syncUC.SyncGroup(r.Context(), groupID, "")
		if err != nil {
			apperr.Handle(r.Context(), err)
			http.Error(w, err.Error(), syncErrorStatus(err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"groupID": groupID.String(),
			"synced":  synced,
		}); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode sync response", "error", err)
		}
	}
}

func syncErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrDirectoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDirectoryForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNoCredential):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
