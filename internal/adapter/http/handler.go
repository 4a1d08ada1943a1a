package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: admission decisions and completion beacons go to the
// AdmissionUseCase, campaign management to the CampaignAdmin. Routes are
// registered on a chi.Router.
type Handler struct {
	svc    port.AdmissionUseCase
	admin  port.CampaignAdmin
	logger *slog.Logger
	router chi.Router

	completionLimit int
	metrics         http.Handler
}

// Option customizes a Handler.
type Option func(*Handler)

// WithCompletionRateLimit caps completion beacons per client IP per
// minute. Zero or less disables the limit.
func WithCompletionRateLimit(perMinute int) Option {
	return func(h *Handler) { h.completionLimit = perMinute }
}

// WithMetrics mounts a metrics handler at /metrics.
func WithMetrics(m http.Handler) Option {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler creates a handler with all routes configured. admin may be
// nil, in which case the campaign endpoints are not mounted.
func NewHandler(svc port.AdmissionUseCase, admin port.CampaignAdmin, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, admin: admin, logger: logger.With(slog.String("component", "http"))}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/admission", h.handleAdmission)

		complete := r.With()
		if h.completionLimit > 0 {
			complete = r.With(httprate.LimitByIP(h.completionLimit, time.Minute))
		}
		complete.Post("/impressions/{token}/complete", h.handleComplete)

		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/usage/{identity}", h.handleUsage)

		if h.admin != nil {
			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.handleCreateCampaign)
				r.Get("/{id}", h.handleGetCampaign)
				r.Put("/{id}/status", h.handleSetStatus)
			})
		}
	})
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// isClientError reports whether err was caused by the request content.
func isClientError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidIdentity,
		domain.ErrInvalidRequest,
		domain.ErrInvalidCampaign,
		domain.ErrUnknownTier,
		domain.ErrUnknownResource,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
