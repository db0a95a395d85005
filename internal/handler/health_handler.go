package handler

import (
	"net/http"
	"time"

	"vtuber-dash/pkg/logger"
	"vtuber-dash/pkg/redis"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	redis  *redis.Client // nil when caching is disabled
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(redisClient *redis.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		redis:  redisClient,
		logger: log,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Service   string    `json:"service"`
	Cache     string    `json:"cache"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Health check requested")

	cache := "disabled"
	if h.redis != nil {
		cache = "healthy"
		if err := h.redis.Health(r.Context()); err != nil {
			h.logger.WithError(err).Warn("Redis health check failed")
			cache = "unhealthy"
		}
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Service:   "vtuber-dash",
		Cache:     cache,
	}

	respondJSON(w, http.StatusOK, response)
}
