package analytics

import (
	"math"
	"sort"
	"strings"

	"vtuber-dash/internal/domain"
)

// TopChannelMetric selects which counter drives the top-channels leaderboard.
type TopChannelMetric string

const (
	MetricSubscribers    TopChannelMetric = "subscribers"
	MetricViews          TopChannelMetric = "views"
	MetricEngagementRate TopChannelMetric = "engagement_rate"
)

// ParseTopChannelMetric maps a request parameter onto a metric, defaulting to
// subscribers.
func ParseTopChannelMetric(s string) TopChannelMetric {
	switch strings.ToLower(s) {
	case string(MetricViews):
		return MetricViews
	case string(MetricEngagementRate), "engagementrate":
		return MetricEngagementRate
	default:
		return MetricSubscribers
	}
}

// TopChannelCandidates prepares leaderboard candidates: channels with
// subscribers, annotated with their engagement rate and subscriber tier
// metadata. The engagement rate is 0 when the channel has no views.
func TopChannelCandidates(channels []domain.Channel) []domain.ChannelMetricEntry {
	entries := make([]domain.ChannelMetricEntry, 0, len(channels))
	for _, ch := range channels {
		if ch.Subscribers <= 0 {
			continue
		}
		tier := TierFor(ch.Subscribers)
		engagement := 0.0
		if ch.Views > 0 {
			engagement = float64(ch.Views) / float64(ch.Subscribers)
		}
		entries = append(entries, domain.ChannelMetricEntry{
			Name:           trimName(ch.Title),
			FullName:       ch.Title,
			ChannelID:      ch.ChannelID,
			Subscribers:    ch.Subscribers,
			Views:          ch.Views,
			EngagementRate: engagement,
			TierID:         tier.ID,
			TierLabel:      tier.Label,
			TierColor:      tier.Color,
		})
	}
	return entries
}

// TopChannels returns the top limit channels by the chosen metric, descending,
// with ties broken by channel ID ascending. Entries with a non-finite metric
// value are excluded before sorting. A non-positive limit defaults to 10.
func TopChannels(channels []domain.Channel, metric TopChannelMetric, limit int) []domain.ChannelMetricEntry {
	if limit <= 0 {
		limit = 10
	}

	candidates := TopChannelCandidates(channels)
	entries := make([]domain.ChannelMetricEntry, 0, len(candidates))
	for _, e := range candidates {
		value := metricValue(e, metric)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		e.MetricValue = value
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].MetricValue != entries[j].MetricValue {
			return entries[i].MetricValue > entries[j].MetricValue
		}
		return entries[i].ChannelID < entries[j].ChannelID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func metricValue(e domain.ChannelMetricEntry, metric TopChannelMetric) float64 {
	switch metric {
	case MetricViews:
		return float64(e.Views)
	case MetricEngagementRate:
		return e.EngagementRate
	default:
		return float64(e.Subscribers)
	}
}

// TierLegend lists the unique tiers referenced by a leaderboard result, in
// first-seen order, for the chart legend.
func TierLegend(entries []domain.ChannelMetricEntry) []domain.TierLegendEntry {
	seen := make(map[string]bool, len(entries))
	legend := make([]domain.TierLegendEntry, 0, len(SubscriberTiers))
	for _, e := range entries {
		if seen[e.TierID] {
			continue
		}
		seen[e.TierID] = true
		legend = append(legend, domain.TierLegendEntry{ID: e.TierID, Label: e.TierLabel, Color: e.TierColor})
	}
	return legend
}

// GrowthPreset is a named growth-potential query: a subscriber range, a
// minimum views-per-subscriber threshold, and a result cap.
type GrowthPreset struct {
	ID            string
	Label         string
	MinSubs       int64
	MaxSubs       int64
	MinEngagement float64
	Limit         int
}

// GrowthPresets are the selectable growth-potential queries.
var GrowthPresets = []GrowthPreset{
	{ID: "emerging", Label: "Emerging (1K-10K subs)", MinSubs: 1_000, MaxSubs: 10_000, MinEngagement: 80, Limit: 12},
	{ID: "scaling", Label: "Scaling (10K-50K subs)", MinSubs: 10_000, MaxSubs: 50_000, MinEngagement: 65, Limit: 12},
	{ID: "breakout", Label: "Breakout (50K-150K subs)", MinSubs: 50_000, MaxSubs: 150_000, MinEngagement: 50, Limit: 12},
}

// GrowthPresetByID resolves a preset id, falling back to the first preset for
// unknown ids.
func GrowthPresetByID(id string) GrowthPreset {
	for _, preset := range GrowthPresets {
		if preset.ID == id {
			return preset
		}
	}
	return GrowthPresets[0]
}

// SelectGrowthPotential applies a growth preset: candidates need more than
// 1000 subscribers, views, and a positive engagement rate; survivors are
// filtered to the preset's subscriber range and engagement threshold, sorted
// by engagement rate descending, and truncated to the preset cap.
func SelectGrowthPotential(channels []domain.Channel, preset GrowthPreset) []domain.GrowthCandidate {
	candidates := make([]domain.GrowthCandidate, 0, len(channels))
	for _, ch := range channels {
		if ch.Subscribers <= 1_000 || ch.Views <= 0 {
			continue
		}
		engagement := float64(ch.Views) / float64(ch.Subscribers)
		if engagement <= 0 {
			continue
		}
		if ch.Subscribers < preset.MinSubs || ch.Subscribers > preset.MaxSubs {
			continue
		}
		if engagement < preset.MinEngagement {
			continue
		}
		tier := TierFor(ch.Subscribers)
		candidates = append(candidates, domain.GrowthCandidate{
			Name:           trimName(ch.Title),
			FullName:       ch.Title,
			Subscribers:    ch.Subscribers,
			Views:          ch.Views,
			EngagementRate: engagement,
			TierID:         tier.ID,
			TierLabel:      tier.Label,
			TierColor:      tier.Color,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].EngagementRate != candidates[j].EngagementRate {
			return candidates[i].EngagementRate > candidates[j].EngagementRate
		}
		return candidates[i].FullName < candidates[j].FullName
	})

	limit := preset.Limit
	if limit <= 0 {
		limit = 12
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// GrowthTierLegend lists the unique tiers referenced by a growth result.
func GrowthTierLegend(candidates []domain.GrowthCandidate) []domain.TierLegendEntry {
	seen := make(map[string]bool, len(candidates))
	legend := make([]domain.TierLegendEntry, 0, len(SubscriberTiers))
	for _, c := range candidates {
		if seen[c.TierID] {
			continue
		}
		seen[c.TierID] = true
		legend = append(legend, domain.TierLegendEntry{ID: c.TierID, Label: c.TierLabel, Color: c.TierColor})
	}
	return legend
}

// ScatterData builds the subscribers-vs-views correlation set: channels with
// both counters positive, ordered by subscribers descending.
func ScatterData(channels []domain.Channel) []domain.ScatterPoint {
	points := make([]domain.ScatterPoint, 0, len(channels))
	for _, ch := range channels {
		if ch.Subscribers <= 0 || ch.Views <= 0 {
			continue
		}
		points = append(points, domain.ScatterPoint{
			Name:        ch.Title,
			Subscribers: ch.Subscribers,
			Views:       ch.Views,
			Ratio:       float64(ch.Views) / float64(ch.Subscribers),
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Subscribers != points[j].Subscribers {
			return points[i].Subscribers > points[j].Subscribers
		}
		return points[i].Name < points[j].Name
	})
	return points
}

// FilterScatter narrows the scatter set to the selected channel names, or caps
// it to the first maxPoints when nothing is selected. A non-positive cap
// defaults to 50.
func FilterScatter(points []domain.ScatterPoint, selectedNames []string, maxPoints int) []domain.ScatterPoint {
	if maxPoints <= 0 {
		maxPoints = 50
	}
	if len(selectedNames) == 0 {
		if len(points) > maxPoints {
			return points[:maxPoints]
		}
		return points
	}

	selected := make(map[string]bool, len(selectedNames))
	for _, name := range selectedNames {
		selected[name] = true
	}
	out := make([]domain.ScatterPoint, 0, len(points))
	for _, p := range points {
		if selected[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

// ScatterNames lists the unique channel names in the scatter set, sorted, for
// the search input.
func ScatterNames(points []domain.ScatterPoint) []string {
	seen := make(map[string]bool, len(points))
	names := make([]string, 0, len(points))
	for _, p := range points {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
