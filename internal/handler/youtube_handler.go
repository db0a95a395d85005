package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vtuber-dash/internal/service"
	"vtuber-dash/pkg/logger"
)

// YouTubeHandler serves per-channel YouTube lookups: RSS uploads,
// playlist feeds and the Data API channel overview.
type YouTubeHandler struct {
	youtube service.YouTubeService
	logger  *logger.Logger
}

// NewYouTubeHandler creates a new YouTube handler
func NewYouTubeHandler(youtube service.YouTubeService, log *logger.Logger) *YouTubeHandler {
	return &YouTubeHandler{
		youtube: youtube,
		logger:  log,
	}
}

// RegisterRoutes mounts the YouTube routes
func (h *YouTubeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/youtube", func(r chi.Router) {
		r.Get("/feed/{channelId}", h.GetChannelFeed)
		r.Get("/playlist/{playlistId}", h.GetPlaylistFeed)
		r.Get("/channel/{channelId}", h.GetChannelOverview)
	})
}

// GetChannelFeed handles GET /api/youtube/feed/{channelId}?limit={n}
func (h *YouTubeHandler) GetChannelFeed(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelId")
	limit := queryInt(r, "limit", 0)

	items, err := h.youtube.GetChannelFeed(r.Context(), channelID, limit)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// GetPlaylistFeed handles GET /api/youtube/playlist/{playlistId}?limit={n}
func (h *YouTubeHandler) GetPlaylistFeed(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "playlistId")
	limit := queryInt(r, "limit", 0)

	items, err := h.youtube.GetPlaylistFeed(r.Context(), playlistID, limit)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// GetChannelOverview handles GET /api/youtube/channel/{channelId}
func (h *YouTubeHandler) GetChannelOverview(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelId")

	overview, err := h.youtube.GetChannelOverview(r.Context(), channelID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}
