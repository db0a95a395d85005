package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtuber-dash/internal/domain"
	"vtuber-dash/pkg/errors"
	"vtuber-dash/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	log, err := logger.New("error", "test")
	require.NoError(t, err)
	return log
}

func TestClient_FetchChannels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channels.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[
			{"channel_id":"UC1","title":"Aqua","subscribers":15000,"views":45,
			 "published_at":"2020-01-01T00:00:00Z","last_published_video_at":"2026-07-20T00:00:00Z"},
			{"channel_id":"UC2","title":"Beryl","subscribers":500,"views":0,"is_rebranded":true}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/channels.json", srv.URL, testLogger(t))

	channels, err := client.FetchChannels(context.Background())
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "UC1", channels[0].ChannelID)
	assert.Equal(t, int64(15000), channels[0].Subscribers)
	assert.True(t, channels[1].IsRebranded)
	assert.Zero(t, channels[1].Views)
}

func TestClient_FetchVideoFeeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/videos/upcoming.json":
			w.Write([]byte(`{"result":[{"id":"v1","title":"Premiere","live_status":1,"live_schedule":"2026-08-02T12:00:00Z"}]}`))
		case "/videos/live.json":
			w.Write([]byte(`{"result":[{"id":"v2","title":"Live now","live_status":2,"live_concurrent_viewer_count":321}]}`))
		case "/videos/ranking_24hr.json":
			w.Write([]byte(`{"result":[{"id":"v3","title":"Top video","view_count":99999,"like_count":1234}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/channels.json", srv.URL+"/videos", testLogger(t))
	ctx := context.Background()

	t.Run("upcoming", func(t *testing.T) {
		videos, err := client.FetchUpcomingVideos(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "v1", videos[0].ID)
		assert.Equal(t, 1, videos[0].LiveStatus)
	})

	t.Run("live", func(t *testing.T) {
		videos, err := client.FetchLiveVideos(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, int64(321), videos[0].LiveConcurrentViewerCount)
	})

	t.Run("ranking window picks the matching file", func(t *testing.T) {
		videos, err := client.FetchRankingVideos(ctx, domain.Ranking24Hr)
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, int64(99999), videos[0].ViewCount)
	})

	t.Run("missing ranking window is a not found error", func(t *testing.T) {
		_, err := client.FetchRankingVideos(ctx, domain.Ranking7Days)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestClient_FetchChannels_Errors(t *testing.T) {
	t.Run("upstream server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, srv.URL, testLogger(t))
		_, err := client.FetchChannels(context.Background())
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeUpstream, appErr.Type)
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, srv.URL, testLogger(t))
		_, err := client.FetchChannels(context.Background())
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeUpstream, appErr.Type)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":[]}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(srv.URL, srv.URL, testLogger(t))
		_, err := client.FetchChannels(ctx)
		assert.Error(t, err)
	})
}
