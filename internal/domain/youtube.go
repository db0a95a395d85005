package domain

// YouTubeFeedItem is one entry from a channel's public RSS feed.
type YouTubeFeedItem struct {
	ID          string  `json:"id"`
	VideoID     string  `json:"video_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Published   string  `json:"published"`
	Updated     string  `json:"updated"`
	Author      string  `json:"author"`
	Views       int64   `json:"views"`
	Rating      float64 `json:"rating"`
}

// YouTubePlaylistItem is one entry from a playlist RSS feed.
type YouTubePlaylistItem struct {
	YouTubeFeedItem
	PlaylistID string `json:"playlist_id"`
}

// YouTubeChannelOverview is the Data API snapshot shown on the channel page.
type YouTubeChannelOverview struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"published_at"`
	Subscribers int64  `json:"subscribers"`
	Views       int64  `json:"views"`
	VideoCount  int64  `json:"video_count"`
}
