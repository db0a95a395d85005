package domain

// Chart dataset records. Every analytics endpoint returns one of these explicit
// shapes; there is no generic payload type.

// ChannelSizeSegment is one subscriber tier slice of the size mix chart.
type ChannelSizeSegment struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// TierActivityRow is the active/inactive split for one subscriber tier, with the
// overall active share attached as a benchmark line.
type TierActivityRow struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Active           int     `json:"active"`
	Inactive         int     `json:"inactive"`
	Total            int     `json:"total"`
	ActivePercentage float64 `json:"active_percentage"`
	Benchmark        float64 `json:"benchmark"`
}

// EngagementBucket is one views-per-subscriber range of the engagement histogram.
type EngagementBucket struct {
	ID    string  `json:"id"`
	Range string  `json:"range"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// EngagementSummary condenses the engagement histogram for the chart header.
type EngagementSummary struct {
	Total               int     `json:"total"`
	MedianLabel         string  `json:"median_label"`
	MedianShare         float64 `json:"median_share"`
	HighEngagementCount int     `json:"high_engagement_count"`
	HighEngagementShare float64 `json:"high_engagement_share"`
	LowEngagementCount  int     `json:"low_engagement_count"`
	LowEngagementShare  float64 `json:"low_engagement_share"`
}

// ActivitySegment is the active or inactive slice of the activity split.
// Percentage is a whole number here, unlike the one-decimal shares elsewhere.
type ActivitySegment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// ActivitySummary is the headline of the activity split chart.
type ActivitySummary struct {
	Total            int `json:"total"`
	Active           int `json:"active"`
	Inactive         int `json:"inactive"`
	ActivePercentage int `json:"active_percentage"`
}

// ActivityTrend compares the current active share against the most recent
// completed cohort year.
type ActivityTrend struct {
	Diff          float64 `json:"diff"`
	BaselineYear  int     `json:"baseline_year"`
	BaselineShare float64 `json:"baseline_share"`
}

// YearlyCohort is one calendar year of channel creations.
type YearlyCohort struct {
	Year               int     `json:"year"`
	NewChannels        int     `json:"new_channels"`
	ActiveChannels     int     `json:"active_channels"`
	InactiveChannels   int     `json:"inactive_channels"`
	ActiveShare        float64 `json:"active_share"`
	CumulativeChannels int     `json:"cumulative_channels"`
}

// YearlySummary condenses the cohort series. PeakYear is nil when the series is
// empty.
type YearlySummary struct {
	TotalChannels  int     `json:"total_channels"`
	CurrentYearNew int     `json:"current_year_new"`
	Last5Average   float64 `json:"last5_average"`
	Last5Total     int     `json:"last5_total"`
	PeakYear       *int    `json:"peak_year"`
	PeakYearNew    int     `json:"peak_year_new"`
}

// FreshnessBucket counts channels by days since their last upload.
type FreshnessBucket struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	MinDays  int    `json:"min_days"`
	MaxDays  int    `json:"max_days"`
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	Inactive int    `json:"inactive"`
}

// FreshnessRange is one bucket of a freshness view under a chosen denominator.
type FreshnessRange struct {
	Range      string  `json:"range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FreshnessViewSummary aggregates the freshness view into the three headline
// windows shown under the chart.
type FreshnessViewSummary struct {
	Last7             int     `json:"last7"`
	Last30            int     `json:"last30"`
	NinetyPlus        int     `json:"ninety_plus"`
	Last7Percent      float64 `json:"last7_percent"`
	Last30Percent     float64 `json:"last30_percent"`
	NinetyPlusPercent float64 `json:"ninety_plus_percent"`
}

// FreshnessView is the freshness histogram rendered for one denominator preset
// (all channels, active only, or inactive only).
type FreshnessView struct {
	Preset   string               `json:"preset"`
	Data     []FreshnessRange     `json:"data"`
	Total    int                  `json:"total"`
	MaxCount int                  `json:"max_count"`
	Summary  FreshnessViewSummary `json:"summary"`
}

// TenurePoint is one channel on the tenure-vs-performance scatter.
type TenurePoint struct {
	Name        string  `json:"name"`
	TenureYears float64 `json:"tenure_years"`
	Subscribers int64   `json:"subscribers"`
	Views       int64   `json:"views"`
	IsActive    bool    `json:"is_active"`
}

// ScatterPoint is one channel on the subscribers-vs-views scatter.
type ScatterPoint struct {
	Name        string  `json:"name"`
	Subscribers int64   `json:"subscribers"`
	Views       int64   `json:"views"`
	Ratio       float64 `json:"ratio"`
}

// ChannelMetricEntry is a leaderboard candidate with its subscriber tier
// metadata attached for legend coloring.
type ChannelMetricEntry struct {
	Name           string  `json:"name"`
	FullName       string  `json:"full_name"`
	ChannelID      string  `json:"channel_id"`
	Subscribers    int64   `json:"subscribers"`
	Views          int64   `json:"views"`
	EngagementRate float64 `json:"engagement_rate"`
	TierID         string  `json:"tier_id"`
	TierLabel      string  `json:"tier_label"`
	TierColor      string  `json:"tier_color"`
	MetricValue    float64 `json:"metric_value"`
}

// GrowthCandidate is a channel matching a growth-potential preset.
type GrowthCandidate struct {
	Name           string  `json:"name"`
	FullName       string  `json:"full_name"`
	Subscribers    int64   `json:"subscribers"`
	Views          int64   `json:"views"`
	EngagementRate float64 `json:"engagement_rate"`
	TierID         string  `json:"tier_id"`
	TierLabel      string  `json:"tier_label"`
	TierColor      string  `json:"tier_color"`
}

// TierLegendEntry is one unique tier referenced by a leaderboard result.
type TierLegendEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}
