package domain

// UpcomingVideo is a scheduled premiere or stream from the upcoming feed.
type UpcomingVideo struct {
	ID                        string `json:"id"`
	Title                     string `json:"title"`
	ChannelID                 string `json:"channel_id"`
	ChannelTitle              string `json:"channel_title"`
	ChannelThumbnailImageURL  string `json:"channel_thumbnail_image_url"`
	ChannelIsRebranded        bool   `json:"channel_is_rebranded"`
	ThumbnailImageURL         string `json:"thumbnail_image_url"`
	Description               string `json:"description"`
	PublishedAt               string `json:"published_at"`
	ViewCount                 int64  `json:"view_count"`
	LiveStatus                int    `json:"live_status"`
	LiveSchedule              string `json:"live_schedule"`
	LiveConcurrentViewerCount int64  `json:"live_concurrent_viewer_count"`
}

// LiveVideo is a currently running stream from the live feed.
type LiveVideo struct {
	ID                        string `json:"id"`
	Title                     string `json:"title"`
	ChannelID                 string `json:"channel_id"`
	ChannelTitle              string `json:"channel_title"`
	ChannelThumbnailImageURL  string `json:"channel_thumbnail_image_url"`
	ChannelIsRebranded        bool   `json:"channel_is_rebranded"`
	ThumbnailImageURL         string `json:"thumbnail_image_url"`
	Description               string `json:"description"`
	PublishedAt               string `json:"published_at"`
	ViewCount                 int64  `json:"view_count"`
	LiveStatus                int    `json:"live_status"`
	LiveSchedule              string `json:"live_schedule"`
	LiveStart                 string `json:"live_start,omitempty"`
	LiveEnd                   string `json:"live_end,omitempty"`
	LiveConcurrentViewerCount int64  `json:"live_concurrent_viewer_count"`
}

// RankingVideo is an entry from one of the ranking window feeds.
type RankingVideo struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	ChannelID         string `json:"channel_id"`
	ChannelTitle      string `json:"channel_title"`
	IsRebranded       bool   `json:"is_rebranded"`
	ThumbnailImageURL string `json:"thumbnail_image_url"`
	PublishedAt       string `json:"published_at"`
	ViewCount         int64  `json:"view_count"`
	CommentCount      int64  `json:"comment_count"`
	DislikeCount      int64  `json:"dislike_count"`
	FavoriteCount     int64  `json:"favorite_count"`
	LikeCount         int64  `json:"like_count"`
}

// RankingWindow identifies which ranking snapshot to fetch.
type RankingWindow string

const (
	Ranking24Hr  RankingWindow = "24hr"
	Ranking7Days RankingWindow = "7days"
)

// VideoFeedResponse is the `{ result: [...] }` envelope shared by all video feeds.
type VideoFeedResponse[T any] struct {
	Result []T `json:"result"`
}
