package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"vtuber-dash/internal/domain"
	"vtuber-dash/internal/feed"
	"vtuber-dash/pkg/errors"
	"vtuber-dash/pkg/logger"
	"vtuber-dash/pkg/redis"
)

// videoService serves the video feeds with per-feed cache TTLs: the live and
// upcoming lists turn over in seconds, the ranking windows in minutes.
type videoService struct {
	feed   *feed.Client
	redis  *redis.Client
	logger *logger.Logger
}

// NewVideoService creates a video service. redisClient may be nil.
func NewVideoService(feedClient *feed.Client, redisClient *redis.Client, log *logger.Logger) VideoService {
	return &videoService{
		feed:   feedClient,
		redis:  redisClient,
		logger: log,
	}
}

func (s *videoService) GetUpcoming(ctx context.Context) ([]domain.UpcomingVideo, error) {
	key := ""
	if s.redis != nil {
		key = s.redis.KeyBuilder.KeyUpcomingVideos()
	}
	return cachedFetch(ctx, s, key, redis.TTLLiveVideos, s.feed.FetchUpcomingVideos)
}

func (s *videoService) GetLive(ctx context.Context) ([]domain.LiveVideo, error) {
	key := ""
	if s.redis != nil {
		key = s.redis.KeyBuilder.KeyLiveVideos()
	}
	return cachedFetch(ctx, s, key, redis.TTLLiveVideos, s.feed.FetchLiveVideos)
}

func (s *videoService) GetRanking(ctx context.Context, window domain.RankingWindow) ([]domain.RankingVideo, error) {
	switch window {
	case domain.Ranking24Hr, domain.Ranking7Days:
	default:
		return nil, errors.NewValidationError("Unknown ranking window", map[string]interface{}{
			"window": string(window),
		})
	}

	key := ""
	if s.redis != nil {
		key = s.redis.KeyBuilder.KeyRankingVideos(string(window))
	}
	return cachedFetch(ctx, s, key, redis.TTLRankingVideos, func(ctx context.Context) ([]domain.RankingVideo, error) {
		return s.feed.FetchRankingVideos(ctx, window)
	})
}

// cachedFetch is the cache-aside path shared by all video feeds. An empty key
// disables caching.
func cachedFetch[T any](ctx context.Context, s *videoService, key string, ttl time.Duration, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if key != "" {
		cached, err := s.redis.Get(ctx, key)
		if err == nil && cached != "" {
			var items []T
			if marshalErr := json.Unmarshal([]byte(cached), &items); marshalErr == nil {
				s.logger.Debug("Video feed cache hit", zap.String("key", key), zap.Int("items", len(items)))
				return items, nil
			} else {
				s.logger.WithError(marshalErr).Warn("Video feed cache corrupted, falling back to feed")
			}
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if data, marshalErr := json.Marshal(items); marshalErr == nil {
			if setErr := s.redis.Set(ctx, key, string(data), ttl); setErr != nil {
				s.logger.WithError(setErr).Warn("Failed to cache video feed")
			}
		}
	}

	return items, nil
}
