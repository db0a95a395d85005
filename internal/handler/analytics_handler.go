package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"vtuber-dash/internal/analytics"
	"vtuber-dash/internal/service"
	"vtuber-dash/pkg/logger"
)

// AnalyticsHandler serves the derived chart datasets.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
	logger    *logger.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analyticsService,
		logger:    log,
	}
}

// RegisterRoutes mounts the analytics routes
func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/overview", h.GetOverview)
		r.Get("/size-mix", h.GetSizeMix)
		r.Get("/tier-activity", h.GetTierActivity)
		r.Get("/engagement", h.GetEngagement)
		r.Get("/activity", h.GetActivity)
		r.Get("/yearly", h.GetYearly)
		r.Get("/freshness", h.GetFreshness)
		r.Get("/tenure", h.GetTenure)
		r.Get("/scatter", h.GetScatter)
		r.Get("/top", h.GetTopChannels)
		r.Get("/growth", h.GetGrowthPotential)
	})
}

// GetOverview handles GET /api/analytics/overview
func (h *AnalyticsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.GetOverview(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// GetSizeMix handles GET /api/analytics/size-mix
func (h *AnalyticsHandler) GetSizeMix(w http.ResponseWriter, r *http.Request) {
	segments, err := h.analytics.GetChannelSizeMix(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, segments)
}

// GetTierActivity handles GET /api/analytics/tier-activity
func (h *AnalyticsHandler) GetTierActivity(w http.ResponseWriter, r *http.Request) {
	rows, err := h.analytics.GetTierActivity(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// GetEngagement handles GET /api/analytics/engagement
func (h *AnalyticsHandler) GetEngagement(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.GetEngagement(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// GetActivity handles GET /api/analytics/activity
func (h *AnalyticsHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.GetActivity(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// GetYearly handles GET /api/analytics/yearly?window={years}
func (h *AnalyticsHandler) GetYearly(w http.ResponseWriter, r *http.Request) {
	window := queryInt(r, "window", 0)

	overview, err := h.analytics.GetYearlyCohorts(r.Context(), window)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// GetFreshness handles GET /api/analytics/freshness?preset={all|active|inactive}
func (h *AnalyticsHandler) GetFreshness(w http.ResponseWriter, r *http.Request) {
	preset := analytics.ParseFreshnessPreset(r.URL.Query().Get("preset"))

	view, err := h.analytics.GetFreshness(r.Context(), preset)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// GetTenure handles GET /api/analytics/tenure?bands=lt1,1to3&active=true&inactive=true
func (h *AnalyticsHandler) GetTenure(w http.ResponseWriter, r *http.Request) {
	var bands []string
	if raw := r.URL.Query().Get("bands"); raw != "" {
		bands = splitParam(raw)
	}
	includeActive := queryBoolDefault(r, "active", true)
	includeInactive := queryBoolDefault(r, "inactive", true)

	points, err := h.analytics.GetTenure(r.Context(), bands, includeActive, includeInactive)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, points)
}

// GetScatter handles GET /api/analytics/scatter?names=a,b&max={n}
func (h *AnalyticsHandler) GetScatter(w http.ResponseWriter, r *http.Request) {
	var names []string
	if raw := r.URL.Query().Get("names"); raw != "" {
		names = splitParam(raw)
	}
	maxPoints := queryInt(r, "max", 0)

	overview, err := h.analytics.GetScatter(r.Context(), names, maxPoints)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// GetTopChannels handles GET /api/analytics/top?metric={subscribers|views|engagement_rate}&limit={n}
func (h *AnalyticsHandler) GetTopChannels(w http.ResponseWriter, r *http.Request) {
	metric := analytics.ParseTopChannelMetric(r.URL.Query().Get("metric"))
	limit := queryInt(r, "limit", 0)

	overview, err := h.analytics.GetTopChannels(r.Context(), metric, limit)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// GetGrowthPotential handles GET /api/analytics/growth?preset={emerging|scaling|breakout}
func (h *AnalyticsHandler) GetGrowthPotential(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.GetGrowthPotential(r.Context(), r.URL.Query().Get("preset"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// splitParam splits a comma-separated parameter, dropping empty pieces.
func splitParam(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// queryBoolDefault parses a boolean query parameter with a fallback.
func queryBoolDefault(r *http.Request, name string, fallback bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return fallback
}
