// Package feed fetches the pre-aggregated JSON snapshots that the dashboard
// is rendered from: one channel list and four video lists, each wrapped in a
// `{ "result": [...] }` envelope.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vtuber-dash/internal/domain"
	"vtuber-dash/pkg/errors"
	"vtuber-dash/pkg/logger"
)

// Client fetches feed snapshots over HTTP.
type Client struct {
	channelFeedURL   string
	videoFeedBaseURL string
	httpClient       *http.Client
	logger           *logger.Logger
}

// NewClient creates a feed client. videoFeedBaseURL is the directory holding
// the video feed files (upcoming.json, live.json, ranking_{window}.json).
func NewClient(channelFeedURL, videoFeedBaseURL string, log *logger.Logger) *Client {
	return &Client{
		channelFeedURL:   channelFeedURL,
		videoFeedBaseURL: videoFeedBaseURL,
		httpClient:       &http.Client{Timeout: 15 * time.Second},
		logger:           log,
	}
}

// FetchChannels downloads the channel snapshot.
func (c *Client) FetchChannels(ctx context.Context) ([]domain.Channel, error) {
	var envelope domain.ChannelFeedResponse
	if err := c.fetchJSON(ctx, c.channelFeedURL, &envelope); err != nil {
		return nil, err
	}
	c.logger.WithField("channels", len(envelope.Result)).Debug("Fetched channel snapshot")
	return envelope.Result, nil
}

// FetchUpcomingVideos downloads the upcoming premieres feed.
func (c *Client) FetchUpcomingVideos(ctx context.Context) ([]domain.UpcomingVideo, error) {
	return fetchVideoFeed[domain.UpcomingVideo](ctx, c, "upcoming.json")
}

// FetchLiveVideos downloads the currently-live feed.
func (c *Client) FetchLiveVideos(ctx context.Context) ([]domain.LiveVideo, error) {
	return fetchVideoFeed[domain.LiveVideo](ctx, c, "live.json")
}

// FetchRankingVideos downloads the ranking feed for a window.
func (c *Client) FetchRankingVideos(ctx context.Context, window domain.RankingWindow) ([]domain.RankingVideo, error) {
	return fetchVideoFeed[domain.RankingVideo](ctx, c, fmt.Sprintf("ranking_%s.json", window))
}

func fetchVideoFeed[T any](ctx context.Context, c *Client, file string) ([]T, error) {
	url := c.videoFeedBaseURL + "/" + file
	var envelope domain.VideoFeedResponse[T]
	if err := c.fetchJSON(ctx, url, &envelope); err != nil {
		return nil, err
	}
	c.logger.WithFields(map[string]interface{}{
		"file":  file,
		"items": len(envelope.Result),
	}).Debug("Fetched video feed")
	return envelope.Result, nil
}

func (c *Client) fetchJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.NewInternalError("Failed to build feed request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Error("Feed request failed")
		return errors.NewUpstreamError("Failed to fetch feed snapshot", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError("Feed snapshot not found")
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Error("Feed returned non-OK status")
		return errors.NewUpstreamError(
			fmt.Sprintf("Feed returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return errors.NewUpstreamError("Failed to read feed response", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewUpstreamError("Failed to decode feed response", err)
	}
	return nil
}
