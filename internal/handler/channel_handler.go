package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vtuber-dash/internal/domain"
	"vtuber-dash/internal/service"
	"vtuber-dash/pkg/logger"
)

// ChannelHandler serves the channel table and its headline numbers.
type ChannelHandler struct {
	channels service.ChannelService
	logger   *logger.Logger
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(channels service.ChannelService, log *logger.Logger) *ChannelHandler {
	return &ChannelHandler{
		channels: channels,
		logger:   log,
	}
}

// RegisterRoutes mounts the channel routes
func (h *ChannelHandler) RegisterRoutes(r chi.Router) {
	r.Route("/channels", func(r chi.Router) {
		r.Get("/", h.GetDashboard)
		r.Get("/stats", h.GetStats)
		r.Get("/ranks", h.GetRanks)
	})
}

// GetDashboard handles GET /api/channels
func (h *ChannelHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	query := service.DashboardQuery{
		Filters: domain.DashboardFilters{
			Search:           r.URL.Query().Get("search"),
			ShowOriginalOnly: queryBool(r, "original_only"),
			ShowInactive:     queryBool(r, "show_inactive"),
		},
		SortBy:   domain.SortField(r.URL.Query().Get("sort_by")),
		Order:    domain.SortOrder(r.URL.Query().Get("order")),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", service.DefaultPageSize),
	}

	view, err := h.channels.GetDashboard(r.Context(), query)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// GetStats handles GET /api/channels/stats
func (h *ChannelHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.channels.GetStats(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// GetRanks handles GET /api/channels/ranks
func (h *ChannelHandler) GetRanks(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.channels.GetSubscriberRanks(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, ranks)
}

// queryBool parses a boolean query parameter, defaulting to false.
func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
