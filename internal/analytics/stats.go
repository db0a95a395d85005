package analytics

import (
	"math"
	"time"

	"vtuber-dash/internal/domain"
)

// CalculateDashboardStats reduces a channel snapshot to the headline numbers.
// A single pass; no pre-sorted order is assumed and an empty snapshot yields
// all zeros.
func CalculateDashboardStats(channels []domain.Channel, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{TotalChannels: len(channels)}

	for _, ch := range channels {
		stats.TotalSubscribers += ch.Subscribers
		stats.TotalViews += ch.Views
		if ch.IsRebranded {
			stats.RebrandedChannels++
		}
		if IsChannelActive(ch, now) {
			stats.ActiveChannels++
		}
	}

	if stats.TotalChannels > 0 {
		stats.AverageSubscribers = int64(math.Round(float64(stats.TotalSubscribers) / float64(stats.TotalChannels)))
	}

	return stats
}
