package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtuber-dash/pkg/errors"
	"vtuber-dash/pkg/logger"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
  <title>Aqua Ch.</title>
  <entry>
    <id>yt:video:abc123</id>
    <yt:videoId>abc123</yt:videoId>
    <title>First stream</title>
    <published>2026-07-20T12:00:00+00:00</published>
    <updated>2026-07-21T08:00:00+00:00</updated>
    <author><name>Aqua Ch.</name></author>
    <media:group>
      <media:title>First stream</media:title>
      <media:thumbnail url="https://i.ytimg.com/vi/abc123/hqdefault.jpg" width="480" height="360"/>
      <media:description>hello!</media:description>
      <media:community>
        <media:starRating count="120" average="4.95" min="1" max="5"/>
        <media:statistics views="4521"/>
      </media:community>
    </media:group>
  </entry>
  <entry>
    <id>yt:video:def456</id>
    <yt:videoId>def456</yt:videoId>
    <title>Second stream</title>
    <published>2026-07-10T12:00:00+00:00</published>
    <updated>2026-07-10T12:00:00+00:00</updated>
    <author><name>Aqua Ch.</name></author>
    <media:group>
      <media:thumbnail url="https://i.ytimg.com/vi/def456/hqdefault.jpg"/>
      <media:description>part two</media:description>
      <media:community>
        <media:starRating count="10" average="5.0" min="1" max="5"/>
        <media:statistics views="987"/>
      </media:community>
    </media:group>
  </entry>
</feed>`

func newFeedFixture(t *testing.T, handler http.HandlerFunc) *Service {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, err := logger.New("error", "test")
	require.NoError(t, err)

	return &Service{
		apiKey:      "test-key",
		feedBaseURL: srv.URL + "/feeds/videos.xml",
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		logger:      log,
	}
}

func TestService_GetChannelFeed(t *testing.T) {
	svc := newFeedFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "UCabc", r.URL.Query().Get("channel_id"))
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(rssFixture))
	})

	items, err := svc.GetChannelFeed(context.Background(), "UCabc", 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "yt:video:abc123", items[0].ID)
	assert.Equal(t, "abc123", items[0].VideoID)
	assert.Equal(t, "First stream", items[0].Title)
	assert.Equal(t, "hello!", items[0].Description)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", items[0].Thumbnail)
	assert.Equal(t, "Aqua Ch.", items[0].Author)
	assert.Equal(t, int64(4521), items[0].Views)
	assert.Equal(t, 4.95, items[0].Rating)

	t.Run("limit truncates", func(t *testing.T) {
		items, err := svc.GetChannelFeed(context.Background(), "UCabc", 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "abc123", items[0].VideoID)
	})

	t.Run("empty channel id is a validation error", func(t *testing.T) {
		_, err := svc.GetChannelFeed(context.Background(), "", 0)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})
}

func TestService_GetPlaylistFeed(t *testing.T) {
	svc := newFeedFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PLxyz", r.URL.Query().Get("playlist_id"))
		w.Write([]byte(rssFixture))
	})

	items, err := svc.GetPlaylistFeed(context.Background(), "PLxyz", 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "PLxyz", items[0].PlaylistID)
	assert.Equal(t, "abc123", items[0].VideoID)
}

func TestService_GetChannelFeed_UpstreamErrors(t *testing.T) {
	t.Run("feed not found", func(t *testing.T) {
		svc := newFeedFixture(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		_, err := svc.GetChannelFeed(context.Background(), "UCmissing", 0)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("malformed XML", func(t *testing.T) {
		svc := newFeedFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<feed><entry>"))
		})

		_, err := svc.GetChannelFeed(context.Background(), "UCabc", 0)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeUpstream, appErr.Type)
	})

	t.Run("server error", func(t *testing.T) {
		svc := newFeedFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := svc.GetChannelFeed(context.Background(), "UCabc", 0)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeUpstream, appErr.Type)
	})
}
