package service

import (
	"context"

	"vtuber-dash/internal/analytics"
	"vtuber-dash/internal/domain"
)

// DashboardQuery is the caller-supplied state for one channel table render.
type DashboardQuery struct {
	Filters  domain.DashboardFilters
	SortBy   domain.SortField
	Order    domain.SortOrder
	Page     int
	PageSize int
}

// ChannelService defines the interface for channel snapshot operations
type ChannelService interface {
	// GetChannels returns the current channel snapshot
	GetChannels(ctx context.Context) ([]domain.Channel, error)

	// GetDashboard renders one page of the channel table
	GetDashboard(ctx context.Context, query DashboardQuery) (*domain.DashboardView, error)

	// GetStats returns the headline numbers for the whole snapshot
	GetStats(ctx context.Context) (*domain.DashboardStats, error)

	// GetSubscriberRanks returns the per-cohort subscriber rankings
	GetSubscriberRanks(ctx context.Context) (*domain.SubscriberRanks, error)
}

// AnalyticsService defines the interface for derived chart datasets
type AnalyticsService interface {
	// GetOverview renders every dataset with its default parameters in one call
	GetOverview(ctx context.Context) (*AnalyticsOverview, error)

	GetChannelSizeMix(ctx context.Context) ([]domain.ChannelSizeSegment, error)
	GetTierActivity(ctx context.Context) ([]domain.TierActivityRow, error)
	GetEngagement(ctx context.Context) (*EngagementOverview, error)
	GetActivity(ctx context.Context) (*ActivityOverview, error)
	GetYearlyCohorts(ctx context.Context, windowYears int) (*YearlyOverview, error)
	GetFreshness(ctx context.Context, preset analytics.FreshnessPreset) (*domain.FreshnessView, error)
	GetTenure(ctx context.Context, bandIDs []string, includeActive, includeInactive bool) ([]domain.TenurePoint, error)
	GetScatter(ctx context.Context, selectedNames []string, maxPoints int) (*ScatterOverview, error)
	GetTopChannels(ctx context.Context, metric analytics.TopChannelMetric, limit int) (*TopChannelsOverview, error)
	GetGrowthPotential(ctx context.Context, presetID string) (*GrowthOverview, error)
}

// VideoService defines the interface for video feed operations
type VideoService interface {
	GetUpcoming(ctx context.Context) ([]domain.UpcomingVideo, error)
	GetLive(ctx context.Context) ([]domain.LiveVideo, error)
	GetRanking(ctx context.Context, window domain.RankingWindow) ([]domain.RankingVideo, error)
}

// YouTubeService defines the interface for YouTube upstream operations
type YouTubeService interface {
	// GetChannelFeed fetches a channel's public RSS feed
	GetChannelFeed(ctx context.Context, channelID string, limit int) ([]domain.YouTubeFeedItem, error)

	// GetPlaylistFeed fetches a playlist's public RSS feed
	GetPlaylistFeed(ctx context.Context, playlistID string, limit int) ([]domain.YouTubePlaylistItem, error)

	// GetChannelOverview fetches channel metadata and statistics from the Data API
	GetChannelOverview(ctx context.Context, channelID string) (*domain.YouTubeChannelOverview, error)
}

// AnalyticsOverview bundles the default render of every chart dataset, so the
// dashboard can hydrate all charts from a single request.
type AnalyticsOverview struct {
	SizeMix      []domain.ChannelSizeSegment `json:"size_mix"`
	TierActivity []domain.TierActivityRow    `json:"tier_activity"`
	Engagement   *EngagementOverview         `json:"engagement"`
	Activity     *ActivityOverview           `json:"activity"`
	Yearly       *YearlyOverview             `json:"yearly"`
	Freshness    *domain.FreshnessView       `json:"freshness"`
	Tenure       []domain.TenurePoint        `json:"tenure"`
	Scatter      *ScatterOverview            `json:"scatter"`
}

// EngagementOverview is the engagement histogram with its header summary.
type EngagementOverview struct {
	Buckets []domain.EngagementBucket `json:"buckets"`
	Summary domain.EngagementSummary  `json:"summary"`
}

// ActivityOverview is the activity split with its year-over-year trend.
// Trend is nil when no completed cohort year exists.
type ActivityOverview struct {
	Segments []domain.ActivitySegment `json:"segments"`
	Summary  domain.ActivitySummary   `json:"summary"`
	Trend    *domain.ActivityTrend    `json:"trend,omitempty"`
}

// YearlyOverview is the cohort series with its headline summary.
type YearlyOverview struct {
	Cohorts []domain.YearlyCohort `json:"cohorts"`
	Summary domain.YearlySummary  `json:"summary"`
}

// ScatterOverview is the capped scatter set plus the full name list for the
// selection input.
type ScatterOverview struct {
	Points []domain.ScatterPoint `json:"points"`
	Names  []string              `json:"names"`
	Total  int                   `json:"total"`
}

// TopChannelsOverview is the leaderboard with its tier legend.
type TopChannelsOverview struct {
	Metric  string                      `json:"metric"`
	Entries []domain.ChannelMetricEntry `json:"entries"`
	Legend  []domain.TierLegendEntry    `json:"legend"`
}

// GrowthOverview is the growth-potential selection with its preset and legend.
type GrowthOverview struct {
	PresetID   string                   `json:"preset_id"`
	Label      string                   `json:"label"`
	Candidates []domain.GrowthCandidate `json:"candidates"`
	Legend     []domain.TierLegendEntry `json:"legend"`
}

// Services aggregates all service interfaces
type Services struct {
	Channel   ChannelService
	Analytics AnalyticsService
	Video     VideoService
	YouTube   YouTubeService
}
