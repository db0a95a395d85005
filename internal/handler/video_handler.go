package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vtuber-dash/internal/domain"
	"vtuber-dash/internal/service"
	"vtuber-dash/pkg/logger"
)

// VideoHandler serves the upcoming, live and ranking video feeds.
type VideoHandler struct {
	videos service.VideoService
	logger *logger.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videos service.VideoService, log *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videos: videos,
		logger: log,
	}
}

// RegisterRoutes mounts the video routes
func (h *VideoHandler) RegisterRoutes(r chi.Router) {
	r.Route("/videos", func(r chi.Router) {
		r.Get("/upcoming", h.GetUpcoming)
		r.Get("/live", h.GetLive)
		r.Get("/ranking/{window}", h.GetRanking)
	})
}

// GetUpcoming handles GET /api/videos/upcoming
func (h *VideoHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	feed, err := h.videos.GetUpcoming(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, feed)
}

// GetLive handles GET /api/videos/live
func (h *VideoHandler) GetLive(w http.ResponseWriter, r *http.Request) {
	feed, err := h.videos.GetLive(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, feed)
}

// GetRanking handles GET /api/videos/ranking/{window}
func (h *VideoHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	window := domain.RankingWindow(chi.URLParam(r, "window"))

	feed, err := h.videos.GetRanking(r.Context(), window)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, feed)
}
