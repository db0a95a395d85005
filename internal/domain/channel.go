package domain

// Channel represents one tracked VTuber channel from the upstream snapshot feed.
// Counters may be absent in the feed and decode to zero; timestamps are ISO strings
// and may be empty or unparseable.
type Channel struct {
	ChannelID            string `json:"channel_id"`
	Title                string `json:"title"`
	ThumbnailIconURL     string `json:"thumbnail_icon_url"`
	Description          string `json:"description,omitempty"`
	Subscribers          int64  `json:"subscribers"`
	Views                int64  `json:"views"`
	PublishedAt          string `json:"published_at"`
	LastPublishedVideoAt string `json:"last_published_video_at"`
	UpdatedAt            int64  `json:"updated_at"`
	IsRebranded          bool   `json:"is_rebranded"`
}

// ChannelFeedResponse is the envelope returned by the channel list feed.
type ChannelFeedResponse struct {
	Result []Channel `json:"result"`
}

// DashboardStats holds the headline numbers shown above the channel table.
type DashboardStats struct {
	TotalChannels      int   `json:"total_channels"`
	TotalSubscribers   int64 `json:"total_subscribers"`
	TotalViews         int64 `json:"total_views"`
	AverageSubscribers int64 `json:"average_subscribers"`
	RebrandedChannels  int   `json:"rebranded_channels"`
	ActiveChannels     int   `json:"active_channels"`
}

// DashboardFilters is the caller-supplied filter state for the channel table.
// ShowOriginalOnly restricts to non-rebranded channels; ShowInactive widens the
// result to channels without a recent upload.
type DashboardFilters struct {
	Search           string `json:"search"`
	ShowOriginalOnly bool   `json:"show_original_only"`
	ShowInactive     bool   `json:"show_inactive"`
}

// PaginationState is the caller-supplied page window. CurrentPage is 1-based.
type PaginationState struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalItems  int `json:"total_items"`
}

// SortField enumerates the channel attributes the table can sort on.
type SortField string

const (
	SortBySubscribers SortField = "subscribers"
	SortByViews       SortField = "views"
	SortByPublishedAt SortField = "published_at"
	SortByLastVideoAt SortField = "last_published_video_at"
	SortByTitle       SortField = "title"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SubscriberRanks holds the two independent dense rankings, one per cohort,
// keyed by channel ID.
type SubscriberRanks struct {
	Original  map[string]int `json:"original"`
	Rebranded map[string]int `json:"rebranded"`
}

// DashboardView is one rendered page of the channel table: the page slice,
// the stats over the filtered set, and the cohort rankings for the whole
// snapshot.
type DashboardView struct {
	Channels   []Channel       `json:"channels"`
	Stats      DashboardStats  `json:"stats"`
	Ranks      SubscriberRanks `json:"ranks"`
	Pagination PaginationState `json:"pagination"`
	TotalPages int             `json:"total_pages"`
}
