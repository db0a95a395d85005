package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vtuber-dash/internal/domain"
	"vtuber-dash/internal/feed"
	"vtuber-dash/pkg/logger"
	"vtuber-dash/pkg/redis"
)

var serviceNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

const channelFixture = `{"result":[
	{"channel_id":"c1","title":"Aqua Ch.","subscribers":900,"views":100,
	 "published_at":"2020-03-01T00:00:00Z","last_published_video_at":"2026-07-20T00:00:00Z"},
	{"channel_id":"c2","title":"Beryl Gaming","subscribers":5000,"views":200,"is_rebranded":true,
	 "published_at":"2021-06-01T00:00:00Z","last_published_video_at":"2026-07-25T00:00:00Z"},
	{"channel_id":"c3","title":"citrus vt","subscribers":200,"views":50,
	 "published_at":"2022-01-01T00:00:00Z","last_published_video_at":"2024-01-01T00:00:00Z"}
]}`

func testServiceLogger(t *testing.T) *logger.Logger {
	log, err := logger.New("error", "test")
	require.NoError(t, err)
	return log
}

// newChannelFixture starts a feed server and returns a channel service backed
// by miniredis, plus the request counter for cache assertions.
func newChannelFixture(t *testing.T, withRedis bool) (ChannelService, *atomic.Int64) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(channelFixture))
	}))
	t.Cleanup(srv.Close)

	log := testServiceLogger(t)
	feedClient := feed.NewClient(srv.URL+"/channels.json", srv.URL, log)

	var redisClient *redis.Client
	if withRedis {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)

		redisClient, err = redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
		require.NoError(t, err)
	}

	svc := NewChannelService(feedClient, redisClient, log)
	svc.(*channelService).now = func() time.Time { return serviceNow }
	return svc, &hits
}

func TestChannelService_GetChannels_CachesSnapshot(t *testing.T) {
	svc, hits := newChannelFixture(t, true)
	ctx := context.Background()

	first, err := svc.GetChannels(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, int64(1), hits.Load())

	second, err := svc.GetChannels(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), hits.Load(), "second call should be served from cache")
}

func TestChannelService_GetChannels_WithoutRedis(t *testing.T) {
	svc, hits := newChannelFixture(t, false)
	ctx := context.Background()

	_, err := svc.GetChannels(ctx)
	require.NoError(t, err)
	_, err = svc.GetChannels(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load(), "without Redis every call goes to the feed")
}

func TestChannelService_GetDashboard(t *testing.T) {
	svc, _ := newChannelFixture(t, false)
	ctx := context.Background()

	t.Run("defaults sort by subscribers descending", func(t *testing.T) {
		view, err := svc.GetDashboard(ctx, DashboardQuery{Filters: domain.DashboardFilters{ShowInactive: true}})
		require.NoError(t, err)

		require.Len(t, view.Channels, 3)
		assert.Equal(t, "c2", view.Channels[0].ChannelID)
		assert.Equal(t, "c1", view.Channels[1].ChannelID)
		assert.Equal(t, 1, view.Pagination.CurrentPage)
		assert.Equal(t, DefaultPageSize, view.Pagination.PageSize)
		assert.Equal(t, 3, view.Pagination.TotalItems)
		assert.Equal(t, 1, view.TotalPages)
	})

	t.Run("stats cover the filtered set, ranks the whole snapshot", func(t *testing.T) {
		view, err := svc.GetDashboard(ctx, DashboardQuery{
			Filters: domain.DashboardFilters{ShowOriginalOnly: true, ShowInactive: true},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, view.Stats.TotalChannels)
		assert.Equal(t, int64(1100), view.Stats.TotalSubscribers)
		// Ranks always span both cohorts of the full snapshot.
		assert.Equal(t, 1, view.Ranks.Original["c1"])
		assert.Equal(t, 2, view.Ranks.Original["c3"])
		assert.Equal(t, 1, view.Ranks.Rebranded["c2"])
	})

	t.Run("pagination windows the sorted result", func(t *testing.T) {
		view, err := svc.GetDashboard(ctx, DashboardQuery{
			Filters:  domain.DashboardFilters{ShowInactive: true},
			Page:     2,
			PageSize: 2,
		})
		require.NoError(t, err)

		require.Len(t, view.Channels, 1)
		assert.Equal(t, "c3", view.Channels[0].ChannelID)
		assert.Equal(t, 2, view.TotalPages)
	})
}

func TestChannelService_GetStats(t *testing.T) {
	svc, _ := newChannelFixture(t, false)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalChannels)
	assert.Equal(t, int64(6100), stats.TotalSubscribers)
	assert.Equal(t, 1, stats.RebrandedChannels)
	assert.Equal(t, 2, stats.ActiveChannels)
}

func TestChannelService_GetSubscriberRanks(t *testing.T) {
	svc, _ := newChannelFixture(t, false)

	ranks, err := svc.GetSubscriberRanks(context.Background())
	require.NoError(t, err)

	assert.Len(t, ranks.Original, 2)
	assert.Len(t, ranks.Rebranded, 1)
}

func TestChannelService_FeedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	log := testServiceLogger(t)
	svc := NewChannelService(feed.NewClient(srv.URL, srv.URL, log), nil, log)

	_, err := svc.GetChannels(context.Background())
	assert.Error(t, err)
}
