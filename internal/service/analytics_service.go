package service

import (
	"context"
	"time"

	"vtuber-dash/internal/analytics"
	"vtuber-dash/internal/domain"
	"vtuber-dash/pkg/logger"
)

// analyticsBundle holds every dataset derived from one snapshot. Computing the
// whole bundle at once keeps all charts consistent with each other.
type analyticsBundle struct {
	sizeSegments      []domain.ChannelSizeSegment
	tierRows          []domain.TierActivityRow
	engagement        []domain.EngagementBucket
	engagementSummary domain.EngagementSummary
	activitySegments  []domain.ActivitySegment
	activitySummary   domain.ActivitySummary
	trend             *domain.ActivityTrend
	cohorts           []domain.YearlyCohort
	freshness         []domain.FreshnessBucket
	tenure            []domain.TenurePoint
	scatter           []domain.ScatterPoint
	totalChannels     int
	now               time.Time
}

// snapshotKey identifies a snapshot for memoization. Two snapshots with the
// same channel count and latest update stamp are treated as identical.
type snapshotKey struct {
	count      int
	maxUpdated int64
}

func keyFor(channels []domain.Channel) snapshotKey {
	key := snapshotKey{count: len(channels)}
	for _, ch := range channels {
		if ch.UpdatedAt > key.maxUpdated {
			key.maxUpdated = ch.UpdatedAt
		}
	}
	return key
}

type analyticsService struct {
	channels ChannelService
	logger   *logger.Logger
	memo     analytics.Memo[snapshotKey, *analyticsBundle]
	now      func() time.Time
}

// NewAnalyticsService creates an analytics service over the channel snapshot.
func NewAnalyticsService(channels ChannelService, log *logger.Logger) AnalyticsService {
	return &analyticsService{
		channels: channels,
		logger:   log,
		now:      time.Now,
	}
}

func (s *analyticsService) bundle(ctx context.Context) (*analyticsBundle, error) {
	channels, err := s.channels.GetChannels(ctx)
	if err != nil {
		return nil, err
	}

	bundle := s.memo.Get(keyFor(channels), func() *analyticsBundle {
		now := s.now()
		s.logger.WithField("channels", len(channels)).Debug("Computing analytics bundle")

		b := &analyticsBundle{
			sizeSegments:  analytics.ChannelSizeSegments(channels),
			tierRows:      analytics.TierActivity(channels, now),
			engagement:    analytics.EngagementDistribution(channels),
			cohorts:       analytics.YearlyCohorts(channels, now),
			freshness:     analytics.FreshnessBuckets(channels, now),
			tenure:        analytics.TenurePerformance(channels, now),
			scatter:       analytics.ScatterData(channels),
			totalChannels: len(channels),
			now:           now,
		}
		b.engagementSummary = analytics.SummarizeEngagement(b.engagement)
		b.activitySegments, b.activitySummary = analytics.ActivitySplit(channels, now)
		b.trend = analytics.ActivityTrendFor(b.activitySummary, b.cohorts, now)
		return b
	})
	return bundle, nil
}

func (s *analyticsService) GetOverview(ctx context.Context) (*AnalyticsOverview, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}

	freshness := analytics.FreshnessViewFor(b.freshness, analytics.FreshnessAll)

	return &AnalyticsOverview{
		SizeMix:      b.sizeSegments,
		TierActivity: b.tierRows,
		Engagement:   &EngagementOverview{Buckets: b.engagement, Summary: b.engagementSummary},
		Activity: &ActivityOverview{
			Segments: b.activitySegments,
			Summary:  b.activitySummary,
			Trend:    b.trend,
		},
		Yearly: &YearlyOverview{
			Cohorts: b.cohorts,
			Summary: analytics.SummarizeYearlyCohorts(b.cohorts, b.totalChannels, b.now),
		},
		Freshness: &freshness,
		Tenure:    analytics.FilterTenure(b.tenure, analytics.DefaultTenureBandIDs(), true, true),
		Scatter: &ScatterOverview{
			Points: analytics.FilterScatter(b.scatter, nil, 0),
			Names:  analytics.ScatterNames(b.scatter),
			Total:  len(b.scatter),
		},
	}, nil
}

func (s *analyticsService) GetChannelSizeMix(ctx context.Context) ([]domain.ChannelSizeSegment, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	return b.sizeSegments, nil
}

func (s *analyticsService) GetTierActivity(ctx context.Context) ([]domain.TierActivityRow, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	return b.tierRows, nil
}

func (s *analyticsService) GetEngagement(ctx context.Context) (*EngagementOverview, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	return &EngagementOverview{Buckets: b.engagement, Summary: b.engagementSummary}, nil
}

func (s *analyticsService) GetActivity(ctx context.Context) (*ActivityOverview, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	return &ActivityOverview{
		Segments: b.activitySegments,
		Summary:  b.activitySummary,
		Trend:    b.trend,
	}, nil
}

func (s *analyticsService) GetYearlyCohorts(ctx context.Context, windowYears int) (*YearlyOverview, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	return &YearlyOverview{
		Cohorts: analytics.WindowYearlyCohorts(b.cohorts, windowYears),
		Summary: analytics.SummarizeYearlyCohorts(b.cohorts, b.totalChannels, b.now),
	}, nil
}

func (s *analyticsService) GetFreshness(ctx context.Context, preset analytics.FreshnessPreset) (*domain.FreshnessView, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	view := analytics.FreshnessViewFor(b.freshness, preset)
	return &view, nil
}

func (s *analyticsService) GetTenure(ctx context.Context, bandIDs []string, includeActive, includeInactive bool) ([]domain.TenurePoint, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	if bandIDs == nil {
		bandIDs = analytics.DefaultTenureBandIDs()
	}
	return analytics.FilterTenure(b.tenure, bandIDs, includeActive, includeInactive), nil
}

func (s *analyticsService) GetScatter(ctx context.Context, selectedNames []string, maxPoints int) (*ScatterOverview, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	return &ScatterOverview{
		Points: analytics.FilterScatter(b.scatter, selectedNames, maxPoints),
		Names:  analytics.ScatterNames(b.scatter),
		Total:  len(b.scatter),
	}, nil
}

func (s *analyticsService) GetTopChannels(ctx context.Context, metric analytics.TopChannelMetric, limit int) (*TopChannelsOverview, error) {
	channels, err := s.channels.GetChannels(ctx)
	if err != nil {
		return nil, err
	}
	entries := analytics.TopChannels(channels, metric, limit)
	return &TopChannelsOverview{
		Metric:  string(metric),
		Entries: entries,
		Legend:  analytics.TierLegend(entries),
	}, nil
}

func (s *analyticsService) GetGrowthPotential(ctx context.Context, presetID string) (*GrowthOverview, error) {
	channels, err := s.channels.GetChannels(ctx)
	if err != nil {
		return nil, err
	}
	preset := analytics.GrowthPresetByID(presetID)
	candidates := analytics.SelectGrowthPotential(channels, preset)
	return &GrowthOverview{
		PresetID:   preset.ID,
		Label:      preset.Label,
		Candidates: candidates,
		Legend:     analytics.GrowthTierLegend(candidates),
	}, nil
}
