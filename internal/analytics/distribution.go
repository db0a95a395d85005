package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"vtuber-dash/internal/domain"
)

// SubscriberTier is one half-open subscriber range [Min, Max). The tier list
// is ordered and non-overlapping; classification takes the first matching
// tier.
type SubscriberTier struct {
	ID    string
	Label string
	Min   int64
	Max   int64
	Color string
}

// SubscriberTiers are the five size tiers used across the size mix, the
// leaderboards and the growth presets.
var SubscriberTiers = []SubscriberTier{
	{ID: "micro", Label: "Micro (0-10K)", Min: 0, Max: 10_000, Color: "#8884d8"},
	{ID: "small", Label: "Small (10K-100K)", Min: 10_000, Max: 100_000, Color: "#82ca9d"},
	{ID: "medium", Label: "Medium (100K-500K)", Min: 100_000, Max: 500_000, Color: "#ffc658"},
	{ID: "large", Label: "Large (500K-1M)", Min: 500_000, Max: 1_000_000, Color: "#ff7300"},
	{ID: "mega", Label: "Mega (1M+)", Min: 1_000_000, Max: math.MaxInt64, Color: "#0088FE"},
}

// TierFor classifies a subscriber count into its tier. Counts past every
// bound fall into the last tier.
func TierFor(subscribers int64) SubscriberTier {
	for _, tier := range SubscriberTiers {
		if subscribers >= tier.Min && subscribers < tier.Max {
			return tier
		}
	}
	return SubscriberTiers[len(SubscriberTiers)-1]
}

// ChannelSizeSegments buckets the snapshot into subscriber tiers. Only tiers
// with at least one channel are reported; shares are over the whole snapshot.
func ChannelSizeSegments(channels []domain.Channel) []domain.ChannelSizeSegment {
	counts := make(map[string]int, len(SubscriberTiers))
	for _, ch := range channels {
		counts[TierFor(ch.Subscribers).ID]++
	}

	segments := make([]domain.ChannelSizeSegment, 0, len(SubscriberTiers))
	for _, tier := range SubscriberTiers {
		count := counts[tier.ID]
		if count == 0 {
			continue
		}
		segments = append(segments, domain.ChannelSizeSegment{
			ID:         tier.ID,
			Label:      tier.Label,
			Count:      count,
			Percentage: share(count, len(channels)),
			Color:      tier.Color,
		})
	}
	return segments
}

// TierActivity reports the active/inactive split per populated tier, with the
// snapshot-wide active share attached to every row as a benchmark.
func TierActivity(channels []domain.Channel, now time.Time) []domain.TierActivityRow {
	type tally struct{ active, inactive int }
	tallies := make(map[string]*tally, len(SubscriberTiers))

	totalActive, total := 0, 0
	for _, ch := range channels {
		tier := TierFor(ch.Subscribers)
		t := tallies[tier.ID]
		if t == nil {
			t = &tally{}
			tallies[tier.ID] = t
		}
		total++
		if IsChannelActive(ch, now) {
			t.active++
			totalActive++
		} else {
			t.inactive++
		}
	}

	benchmark := share(totalActive, total)

	rows := make([]domain.TierActivityRow, 0, len(SubscriberTiers))
	for _, tier := range SubscriberTiers {
		t := tallies[tier.ID]
		if t == nil {
			continue
		}
		count := t.active + t.inactive
		rows = append(rows, domain.TierActivityRow{
			ID:               tier.ID,
			Name:             tier.Label,
			Active:           t.active,
			Inactive:         t.inactive,
			Total:            count,
			ActivePercentage: share(t.active, count),
			Benchmark:        benchmark,
		})
	}
	return rows
}

type engagementRange struct {
	id    string
	label string
	min   float64
	max   float64
}

// Engagement ranges use inclusive integer bounds; fractional ratios that fall
// between two ranges (e.g. 50.5) match none and are excluded, mirroring the
// dashboard's historical behavior.
var engagementRanges = []engagementRange{
	{id: "0_50", label: "0-50", min: 0, max: 50},
	{id: "51_100", label: "51-100", min: 51, max: 100},
	{id: "101_200", label: "101-200", min: 101, max: 200},
	{id: "201_500", label: "201-500", min: 201, max: 500},
	{id: "501_1000", label: "501-1000", min: 501, max: 1000},
	{id: "1000_plus", label: "1000+", min: 1001, max: math.Inf(1)},
}

// EngagementDistribution buckets channels by views-per-subscriber ratio.
// Channels without a defined ratio (zero subscribers or zero views) are
// excluded from every bucket; shares are still over the whole snapshot, so
// bucket shares may sum below 100%.
func EngagementDistribution(channels []domain.Channel) []domain.EngagementBucket {
	counts := make(map[string]int, len(engagementRanges))
	for _, ch := range channels {
		if ch.Subscribers <= 0 || ch.Views <= 0 {
			continue
		}
		ratio := float64(ch.Views) / float64(ch.Subscribers)
		for _, r := range engagementRanges {
			if ratio >= r.min && ratio <= r.max {
				counts[r.id]++
				break
			}
		}
	}

	buckets := make([]domain.EngagementBucket, 0, len(engagementRanges))
	for _, r := range engagementRanges {
		buckets = append(buckets, domain.EngagementBucket{
			ID:    r.id,
			Range: r.label,
			Count: counts[r.id],
			Share: share(counts[r.id], len(channels)),
		})
	}
	return buckets
}

// SummarizeEngagement condenses the engagement histogram: the median bucket
// (first bucket at which the cumulative count reaches half the bucketed
// total) and the high/low engagement tails.
func SummarizeEngagement(buckets []domain.EngagementBucket) domain.EngagementSummary {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}

	summary := domain.EngagementSummary{Total: total, MedianLabel: "N/A"}
	if total == 0 {
		return summary
	}

	cumulative := 0
	for _, b := range buckets {
		cumulative += b.Count
		if float64(cumulative) >= float64(total)/2 {
			summary.MedianLabel = b.Range
			summary.MedianShare = b.Share
			break
		}
	}

	for _, b := range buckets {
		switch b.ID {
		case "501_1000", "1000_plus":
			summary.HighEngagementCount += b.Count
		case "0_50", "51_100":
			summary.LowEngagementCount += b.Count
		}
	}
	summary.HighEngagementShare = share(summary.HighEngagementCount, total)
	summary.LowEngagementShare = share(summary.LowEngagementCount, total)
	return summary
}

// ActivitySplit reports the active/inactive breakdown of the whole snapshot.
// These two percentages are whole numbers; every other share in the package
// keeps one decimal.
func ActivitySplit(channels []domain.Channel, now time.Time) ([]domain.ActivitySegment, domain.ActivitySummary) {
	active := 0
	for _, ch := range channels {
		if IsChannelActive(ch, now) {
			active++
		}
	}
	inactive := len(channels) - active

	wholeShare := func(count int) int {
		if len(channels) == 0 {
			return 0
		}
		return int(math.Round(float64(count) / float64(len(channels)) * 100))
	}

	segments := []domain.ActivitySegment{
		{ID: "active", Name: "Active (≤90d)", Value: active, Percentage: wholeShare(active), Color: "#22c55e"},
		{ID: "inactive", Name: "Inactive (>90d)", Value: inactive, Percentage: wholeShare(inactive), Color: "#94a3b8"},
	}

	summary := domain.ActivitySummary{
		Total:            len(channels),
		Active:           active,
		Inactive:         inactive,
		ActivePercentage: segments[0].Percentage,
	}
	return segments, summary
}

// YearlyCohorts groups channels by creation year and walks the years in
// ascending order, accumulating the running total. Channels without a
// parseable creation timestamp are skipped.
func YearlyCohorts(channels []domain.Channel, now time.Time) []domain.YearlyCohort {
	type tally struct{ total, active int }
	byYear := make(map[int]*tally)

	for _, ch := range channels {
		ts, ok := parseTimestamp(ch.PublishedAt)
		if !ok {
			continue
		}
		year := ts.Year()
		t := byYear[year]
		if t == nil {
			t = &tally{}
			byYear[year] = t
		}
		t.total++
		if IsChannelActive(ch, now) {
			t.active++
		}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	cohorts := make([]domain.YearlyCohort, 0, len(years))
	cumulative := 0
	for _, year := range years {
		t := byYear[year]
		cumulative += t.total
		cohorts = append(cohorts, domain.YearlyCohort{
			Year:               year,
			NewChannels:        t.total,
			ActiveChannels:     t.active,
			InactiveChannels:   t.total - t.active,
			ActiveShare:        share(t.active, t.total),
			CumulativeChannels: cumulative,
		})
	}
	return cohorts
}

// SummarizeYearlyCohorts derives the cohort headline: this calendar year's new
// channels, the average over the most recent five years present, and the
// first peak year.
func SummarizeYearlyCohorts(cohorts []domain.YearlyCohort, totalChannels int, now time.Time) domain.YearlySummary {
	summary := domain.YearlySummary{TotalChannels: totalChannels}
	if len(cohorts) == 0 {
		return summary
	}

	currentYear := now.Year()
	last5Count := 0
	for _, c := range cohorts {
		if c.Year == currentYear {
			summary.CurrentYearNew = c.NewChannels
		}
		if c.Year >= currentYear-4 {
			summary.Last5Total += c.NewChannels
			last5Count++
		}
	}
	if last5Count > 0 {
		summary.Last5Average = round1(float64(summary.Last5Total) / float64(last5Count))
	}

	for _, c := range cohorts {
		if summary.PeakYear == nil || c.NewChannels > summary.PeakYearNew {
			year := c.Year
			summary.PeakYear = &year
			summary.PeakYearNew = c.NewChannels
		}
	}
	return summary
}

// WindowYearlyCohorts restricts the cohort series to the trailing window of
// years ending at the latest year present. A non-positive window keeps the
// whole series.
func WindowYearlyCohorts(cohorts []domain.YearlyCohort, window int) []domain.YearlyCohort {
	if window <= 0 || len(cohorts) == 0 {
		return cohorts
	}
	minYear := cohorts[len(cohorts)-1].Year - window + 1
	out := make([]domain.YearlyCohort, 0, len(cohorts))
	for _, c := range cohorts {
		if c.Year >= minYear {
			out = append(out, c)
		}
	}
	return out
}

// ActivityTrendFor compares the snapshot's current active share against the
// most recent cohort year before the current one. Returns nil when the
// snapshot is empty or no baseline year exists.
func ActivityTrendFor(summary domain.ActivitySummary, cohorts []domain.YearlyCohort, now time.Time) *domain.ActivityTrend {
	if summary.Total == 0 {
		return nil
	}
	currentYear := now.Year()
	for i := len(cohorts) - 1; i >= 0; i-- {
		if cohorts[i].Year < currentYear {
			return &domain.ActivityTrend{
				Diff:          round1(float64(summary.ActivePercentage) - cohorts[i].ActiveShare),
				BaselineYear:  cohorts[i].Year,
				BaselineShare: cohorts[i].ActiveShare,
			}
		}
	}
	return nil
}

type freshnessRange struct {
	id      string
	label   string
	minDays int
	maxDays int
}

var freshnessRanges = []freshnessRange{
	{id: "0_7", label: "0-7 days", minDays: 0, maxDays: 7},
	{id: "8_30", label: "8-30 days", minDays: 8, maxDays: 30},
	{id: "31_90", label: "31-90 days", minDays: 31, maxDays: 90},
	{id: "91_180", label: "91-180 days", minDays: 91, maxDays: 180},
	{id: "181_365", label: "181-365 days", minDays: 181, maxDays: 365},
	{id: "365_plus", label: "1+ years", minDays: 366, maxDays: math.MaxInt32},
}

// FreshnessPreset selects which denominator drives the freshness view.
type FreshnessPreset string

const (
	FreshnessAll      FreshnessPreset = "all"
	FreshnessActive   FreshnessPreset = "active"
	FreshnessInactive FreshnessPreset = "inactive"
)

// ParseFreshnessPreset maps a request parameter onto a preset, defaulting to
// the all-channels view.
func ParseFreshnessPreset(s string) FreshnessPreset {
	switch strings.ToLower(s) {
	case string(FreshnessActive):
		return FreshnessActive
	case string(FreshnessInactive):
		return FreshnessInactive
	default:
		return FreshnessAll
	}
}

// FreshnessBuckets counts channels by days since their last upload. Channels
// without an upload timestamp are excluded entirely; each bucket tracks its
// active/inactive split so any denominator preset can be derived later.
func FreshnessBuckets(channels []domain.Channel, now time.Time) []domain.FreshnessBucket {
	buckets := make([]domain.FreshnessBucket, len(freshnessRanges))
	for i, r := range freshnessRanges {
		buckets[i] = domain.FreshnessBucket{ID: r.id, Label: r.label, MinDays: r.minDays, MaxDays: r.maxDays}
	}

	for _, ch := range channels {
		ts, ok := parseTimestamp(ch.LastPublishedVideoAt)
		if !ok {
			continue
		}
		daysSince := int(math.Floor(now.Sub(ts).Hours() / 24))
		for i := range buckets {
			if daysSince >= buckets[i].MinDays && daysSince <= buckets[i].MaxDays {
				buckets[i].Total++
				if IsChannelActive(ch, now) {
					buckets[i].Active++
				} else {
					buckets[i].Inactive++
				}
				break
			}
		}
	}
	return buckets
}

// FreshnessViewFor projects the freshness buckets through a denominator
// preset. An empty selection yields a zeroed view rather than NaN shares.
func FreshnessViewFor(buckets []domain.FreshnessBucket, preset FreshnessPreset) domain.FreshnessView {
	value := func(b domain.FreshnessBucket) int {
		switch preset {
		case FreshnessActive:
			return b.Active
		case FreshnessInactive:
			return b.Inactive
		default:
			return b.Total
		}
	}

	view := domain.FreshnessView{Preset: string(preset), Data: []domain.FreshnessRange{}}
	total := 0
	for _, b := range buckets {
		total += value(b)
	}
	if total == 0 {
		return view
	}
	view.Total = total

	for _, b := range buckets {
		count := value(b)
		if count > view.MaxCount {
			view.MaxCount = count
		}
		view.Data = append(view.Data, domain.FreshnessRange{
			Range:      b.Label,
			Count:      count,
			Percentage: share(count, total),
		})
	}

	last7 := value(buckets[0])
	last30 := last7 + value(buckets[1])
	ninetyPlus := 0
	for _, b := range buckets[3:] {
		ninetyPlus += value(b)
	}
	view.Summary = domain.FreshnessViewSummary{
		Last7:             last7,
		Last30:            last30,
		NinetyPlus:        ninetyPlus,
		Last7Percent:      share(last7, total),
		Last30Percent:     share(last30, total),
		NinetyPlusPercent: share(ninetyPlus, total),
	}
	return view
}

// TenureBand is one channel-age range in years; Max is exclusive.
type TenureBand struct {
	ID    string
	Label string
	Min   float64
	Max   float64
}

// TenureBands are the selectable age bands for the tenure scatter.
var TenureBands = []TenureBand{
	{ID: "lt1", Label: "<1y", Min: 0, Max: 1},
	{ID: "1to3", Label: "1-3y", Min: 1, Max: 3},
	{ID: "3to5", Label: "3-5y", Min: 3, Max: 5},
	{ID: "5to10", Label: "5-10y", Min: 5, Max: 10},
	{ID: "10plus", Label: "10y+", Min: 10, Max: math.Inf(1)},
}

// DefaultTenureBandIDs is the band set enabled by default. The 10y+ band is
// off by default but remains selectable.
func DefaultTenureBandIDs() []string {
	ids := make([]string, 0, len(TenureBands)-1)
	for _, band := range TenureBands {
		if band.ID != "10plus" {
			ids = append(ids, band.ID)
		}
	}
	return ids
}

// TenurePerformance builds the tenure-vs-subscribers scatter set: channels
// with a valid creation timestamp and a non-zero subscriber count, ordered by
// ascending tenure (name breaks ties).
func TenurePerformance(channels []domain.Channel, now time.Time) []domain.TenurePoint {
	points := make([]domain.TenurePoint, 0, len(channels))
	for _, ch := range channels {
		if ch.Subscribers <= 0 {
			continue
		}
		ts, ok := parseTimestamp(ch.PublishedAt)
		if !ok {
			continue
		}
		tenure := now.Sub(ts).Hours() / 24 / 365
		if tenure < 0 {
			tenure = 0
		}
		points = append(points, domain.TenurePoint{
			Name:        ch.Title,
			TenureYears: tenure,
			Subscribers: ch.Subscribers,
			Views:       ch.Views,
			IsActive:    IsChannelActive(ch, now),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].TenureYears != points[j].TenureYears {
			return points[i].TenureYears < points[j].TenureYears
		}
		return points[i].Name < points[j].Name
	})
	return points
}

// FilterTenure keeps points whose tenure falls in one of the selected bands
// and whose activity matches the enabled toggles. An empty band selection
// yields no points.
func FilterTenure(points []domain.TenurePoint, bandIDs []string, includeActive, includeInactive bool) []domain.TenurePoint {
	selected := make([]TenureBand, 0, len(TenureBands))
	for _, band := range TenureBands {
		for _, id := range bandIDs {
			if band.ID == id {
				selected = append(selected, band)
				break
			}
		}
	}
	if len(selected) == 0 {
		return []domain.TenurePoint{}
	}

	out := make([]domain.TenurePoint, 0, len(points))
	for _, p := range points {
		inBand := false
		for _, band := range selected {
			if p.TenureYears >= band.Min && p.TenureYears < band.Max {
				inBand = true
				break
			}
		}
		if !inBand {
			continue
		}
		if (p.IsActive && includeActive) || (!p.IsActive && includeInactive) {
			out = append(out, p)
		}
	}
	return out
}
