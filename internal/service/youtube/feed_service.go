// Package youtube fetches per-channel data straight from YouTube: the public
// RSS feeds for recent uploads and the Data API for channel metadata.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"vtuber-dash/internal/domain"
	"vtuber-dash/internal/service"
	"vtuber-dash/pkg/errors"
	"vtuber-dash/pkg/logger"
	"vtuber-dash/pkg/redis"
)

const (
	defaultFeedBaseURL = "https://www.youtube.com/feeds/videos.xml"
	defaultFeedLimit   = 15
)

// Service implements the YouTubeService interface
type Service struct {
	apiKey      string
	feedBaseURL string
	httpClient  *http.Client
	redis       *redis.Client
	logger      *logger.Logger
}

// NewService creates a new YouTube service. redisClient may be nil.
func NewService(apiKey string, redisClient *redis.Client, log *logger.Logger) service.YouTubeService {
	return &Service{
		apiKey:      apiKey,
		feedBaseURL: defaultFeedBaseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		redis:       redisClient,
		logger:      log,
	}
}

// Atom feed shapes for the public videos.xml endpoint. Namespaced elements
// (yt:videoId, media:group) match on local name.
type rssFeed struct {
	Entries []rssEntry `xml:"entry"`
}

type rssEntry struct {
	ID        string `xml:"id"`
	VideoID   string `xml:"videoId"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
	Updated   string `xml:"updated"`
	Author    struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Group rssMediaGroup `xml:"group"`
}

type rssMediaGroup struct {
	Description string `xml:"description"`
	Thumbnail   struct {
		URL string `xml:"url,attr"`
	} `xml:"thumbnail"`
	Community struct {
		StarRating struct {
			Average float64 `xml:"average,attr"`
		} `xml:"starRating"`
		Statistics struct {
			Views int64 `xml:"views,attr"`
		} `xml:"statistics"`
	} `xml:"community"`
}

func (e rssEntry) toFeedItem() domain.YouTubeFeedItem {
	return domain.YouTubeFeedItem{
		ID:          e.ID,
		VideoID:     e.VideoID,
		Title:       e.Title,
		Description: e.Group.Description,
		Thumbnail:   e.Group.Thumbnail.URL,
		Published:   e.Published,
		Updated:     e.Updated,
		Author:      e.Author.Name,
		Views:       e.Group.Community.Statistics.Views,
		Rating:      e.Group.Community.StarRating.Average,
	}
}

// GetChannelFeed fetches a channel's public RSS feed, newest first as served.
func (s *Service) GetChannelFeed(ctx context.Context, channelID string, limit int) ([]domain.YouTubeFeedItem, error) {
	if channelID == "" {
		return nil, errors.NewValidationError("Channel ID is required", nil)
	}

	var cacheKey string
	if s.redis != nil {
		cacheKey = s.redis.KeyBuilder.KeyChannelRSS(channelID)
		var cached []domain.YouTubeFeedItem
		if s.fromCache(ctx, cacheKey, &cached) {
			return capItems(cached, limit), nil
		}
	}

	entries, err := s.fetchRSS(ctx, s.feedBaseURL+"?channel_id="+url.QueryEscape(channelID))
	if err != nil {
		return nil, err
	}

	items := make([]domain.YouTubeFeedItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.toFeedItem())
	}

	s.toCache(ctx, cacheKey, items, redis.TTLRSSFeed)
	return capItems(items, limit), nil
}

// GetPlaylistFeed fetches a playlist's public RSS feed.
func (s *Service) GetPlaylistFeed(ctx context.Context, playlistID string, limit int) ([]domain.YouTubePlaylistItem, error) {
	if playlistID == "" {
		return nil, errors.NewValidationError("Playlist ID is required", nil)
	}

	var cacheKey string
	if s.redis != nil {
		cacheKey = s.redis.KeyBuilder.KeyPlaylistRSS(playlistID)
		var cached []domain.YouTubePlaylistItem
		if s.fromCache(ctx, cacheKey, &cached) {
			return capItems(cached, limit), nil
		}
	}

	entries, err := s.fetchRSS(ctx, s.feedBaseURL+"?playlist_id="+url.QueryEscape(playlistID))
	if err != nil {
		return nil, err
	}

	items := make([]domain.YouTubePlaylistItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, domain.YouTubePlaylistItem{
			YouTubeFeedItem: e.toFeedItem(),
			PlaylistID:      playlistID,
		})
	}

	s.toCache(ctx, cacheKey, items, redis.TTLRSSFeed)
	return capItems(items, limit), nil
}

// GetChannelOverview fetches channel metadata and statistics from the Data API.
func (s *Service) GetChannelOverview(ctx context.Context, channelID string) (*domain.YouTubeChannelOverview, error) {
	if channelID == "" {
		return nil, errors.NewValidationError("Channel ID is required", nil)
	}

	var cacheKey string
	if s.redis != nil {
		cacheKey = s.redis.KeyBuilder.KeyChannelOverview(channelID)
		var cached domain.YouTubeChannelOverview
		if s.fromCache(ctx, cacheKey, &cached) {
			return &cached, nil
		}
	}

	s.logger.WithField("channel_id", channelID).Debug("Getting YouTube channel overview")

	yt, err := youtubeapi.NewService(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		s.logger.WithError(err).Error("Failed to create YouTube service")
		return nil, errors.NewInternalError("Failed to initialize YouTube service", err)
	}

	call := yt.Channels.List([]string{"id", "snippet", "statistics"}).Id(channelID)
	resp, err := call.Do()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get channel overview")
		return nil, errors.NewUpstreamError("Failed to get YouTube channel information", err)
	}

	if len(resp.Items) == 0 {
		s.logger.WithField("channel_id", channelID).Warn("Channel not found")
		return nil, errors.NewNotFoundError("YouTube channel not found")
	}

	channel := resp.Items[0]

	thumbnail := ""
	if channel.Snippet.Thumbnails != nil {
		if channel.Snippet.Thumbnails.Default != nil {
			thumbnail = channel.Snippet.Thumbnails.Default.Url
		} else if channel.Snippet.Thumbnails.Medium != nil {
			thumbnail = channel.Snippet.Thumbnails.Medium.Url
		} else if channel.Snippet.Thumbnails.High != nil {
			thumbnail = channel.Snippet.Thumbnails.High.Url
		}
	}

	overview := &domain.YouTubeChannelOverview{
		ID:          channel.Id,
		Title:       channel.Snippet.Title,
		Description: channel.Snippet.Description,
		Thumbnail:   thumbnail,
		PublishedAt: channel.Snippet.PublishedAt,
	}
	if channel.Statistics != nil {
		overview.Subscribers = int64(channel.Statistics.SubscriberCount)
		overview.Views = int64(channel.Statistics.ViewCount)
		overview.VideoCount = int64(channel.Statistics.VideoCount)
	}

	s.toCache(ctx, cacheKey, overview, redis.TTLChannelOverview)

	s.logger.WithFields(map[string]interface{}{
		"channel_id":    overview.ID,
		"channel_title": overview.Title,
	}).Debug("Retrieved YouTube channel overview")

	return overview, nil
}

func (s *Service) fetchRSS(ctx context.Context, feedURL string) ([]rssEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, errors.NewInternalError("Failed to build RSS request", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.WithError(err).Error("RSS request failed")
		return nil, errors.NewUpstreamError("Failed to fetch RSS feed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewNotFoundError("RSS feed not found")
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.WithField("status", resp.StatusCode).Error("RSS feed returned non-OK status")
		return nil, errors.NewUpstreamError(fmt.Sprintf("RSS feed returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, errors.NewUpstreamError("Failed to read RSS response", err)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, errors.NewUpstreamError("Failed to parse RSS feed", err)
	}
	return feed.Entries, nil
}

// fromCache loads a cached JSON value. Returns false on miss, error or when
// caching is disabled.
func (s *Service) fromCache(ctx context.Context, key string, out interface{}) bool {
	if s.redis == nil || key == "" {
		return false
	}
	cached, err := s.redis.Get(ctx, key)
	if err != nil || cached == "" {
		return false
	}
	if err := json.Unmarshal([]byte(cached), out); err != nil {
		s.logger.WithError(err).Warn("YouTube cache corrupted, refetching")
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.redis == nil || key == "" {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, string(data), ttl); err != nil {
		s.logger.WithError(err).Warn("Failed to cache YouTube response")
	}
}

func capItems[T any](items []T, limit int) []T {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
