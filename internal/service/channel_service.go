package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"vtuber-dash/internal/analytics"
	"vtuber-dash/internal/domain"
	"vtuber-dash/internal/feed"
	"vtuber-dash/pkg/logger"
	"vtuber-dash/pkg/redis"
)

// DefaultPageSize is used when the caller does not specify a page window.
const DefaultPageSize = 25

// channelService serves the channel snapshot with a Redis cache-aside layer.
// The Redis client may be nil, in which case every call goes to the feed.
type channelService struct {
	feed   *feed.Client
	redis  *redis.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewChannelService creates a channel service. redisClient may be nil.
func NewChannelService(feedClient *feed.Client, redisClient *redis.Client, log *logger.Logger) ChannelService {
	return &channelService{
		feed:   feedClient,
		redis:  redisClient,
		logger: log,
		now:    time.Now,
	}
}

// GetChannels returns the current channel snapshot, cached for a few minutes.
func (s *channelService) GetChannels(ctx context.Context) ([]domain.Channel, error) {
	if s.redis == nil {
		return s.feed.FetchChannels(ctx)
	}

	cacheKey := s.redis.KeyBuilder.KeyChannelSnapshot()

	cached, err := s.redis.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var channels []domain.Channel
		if marshalErr := json.Unmarshal([]byte(cached), &channels); marshalErr == nil {
			s.logger.Debug("Channel snapshot cache hit", zap.Int("channels", len(channels)))
			return channels, nil
		} else {
			s.logger.WithError(marshalErr).Warn("Channel snapshot cache corrupted, falling back to feed")
		}
	}

	s.logger.Debug("Channel snapshot cache miss")
	channels, err := s.feed.FetchChannels(ctx)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(channels); marshalErr == nil {
		if setErr := s.redis.Set(ctx, cacheKey, string(data), redis.TTLChannelSnapshot); setErr != nil {
			s.logger.WithError(setErr).Warn("Failed to cache channel snapshot")
		}
	}

	return channels, nil
}

// GetDashboard renders one page of the channel table: filter, sort, paginate,
// with stats over the filtered set and cohort rankings over the whole snapshot.
func (s *channelService) GetDashboard(ctx context.Context, query DashboardQuery) (*domain.DashboardView, error) {
	channels, err := s.GetChannels(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = DefaultPageSize
	}
	if query.SortBy == "" {
		query.SortBy = domain.SortBySubscribers
	}
	if query.Order == "" {
		query.Order = domain.SortDesc
	}

	filtered := analytics.FilterChannels(channels, query.Filters, now)
	sorted := analytics.SortChannels(filtered, query.SortBy, query.Order)
	page := analytics.Paginate(sorted, query.Page, query.PageSize)

	view := &domain.DashboardView{
		Channels: page,
		Stats:    analytics.CalculateDashboardStats(filtered, now),
		Ranks:    analytics.SubscriberRanks(channels),
		Pagination: domain.PaginationState{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  len(filtered),
		},
		TotalPages: analytics.TotalPages(len(filtered), query.PageSize),
	}
	return view, nil
}

// GetStats returns the headline numbers over the whole snapshot.
func (s *channelService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	channels, err := s.GetChannels(ctx)
	if err != nil {
		return nil, err
	}
	stats := analytics.CalculateDashboardStats(channels, s.now())
	return &stats, nil
}

// GetSubscriberRanks returns the per-cohort subscriber rankings.
func (s *channelService) GetSubscriberRanks(ctx context.Context) (*domain.SubscriberRanks, error) {
	channels, err := s.GetChannels(ctx)
	if err != nil {
		return nil, err
	}
	ranks := analytics.SubscriberRanks(channels)
	return &ranks, nil
}
