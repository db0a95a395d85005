package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtuber-dash/internal/domain"
)

var filterNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func filterFixture() []domain.Channel {
	return []domain.Channel{
		{ChannelID: "c1", Title: "Aqua Ch.", Subscribers: 900, Views: 100, LastPublishedVideoAt: "2026-07-20T00:00:00Z"},
		{ChannelID: "c2", Title: "Beryl Gaming", Subscribers: 5000, Views: 200, IsRebranded: true, LastPublishedVideoAt: "2026-07-25T00:00:00Z"},
		{ChannelID: "c3", Title: "citrus vt", Subscribers: 200, Views: 50, LastPublishedVideoAt: "2024-01-01T00:00:00Z"},
		{ChannelID: "c4", Title: "Dahlia", Subscribers: 5000, Views: 400},
	}
}

func TestFilterChannels(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.DashboardFilters
		expected []string
	}{
		{
			name:     "defaults keep active originals only",
			filters:  domain.DashboardFilters{ShowOriginalOnly: true},
			expected: []string{"c1"},
		},
		{
			name:     "show inactive widens to all originals",
			filters:  domain.DashboardFilters{ShowOriginalOnly: true, ShowInactive: true},
			expected: []string{"c1", "c3", "c4"},
		},
		{
			name:     "all cohorts all activity",
			filters:  domain.DashboardFilters{ShowInactive: true},
			expected: []string{"c1", "c2", "c3", "c4"},
		},
		{
			name:     "search is case-insensitive",
			filters:  domain.DashboardFilters{Search: "CITRUS", ShowInactive: true},
			expected: []string{"c3"},
		},
		{
			name:     "search conjoins with activity clause",
			filters:  domain.DashboardFilters{Search: "citrus"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterChannels(filterFixture(), tt.filters, filterNow)
			ids := make([]string, 0, len(got))
			for _, ch := range got {
				ids = append(ids, ch.ChannelID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterChannelsIdempotent(t *testing.T) {
	filters := domain.DashboardFilters{Search: "a", ShowOriginalOnly: true, ShowInactive: true}
	once := FilterChannels(filterFixture(), filters, filterNow)
	twice := FilterChannels(once, filters, filterNow)
	assert.Equal(t, once, twice)
}

func TestSortChannels(t *testing.T) {
	channels := filterFixture()

	t.Run("subscribers descending with channel id tie-break", func(t *testing.T) {
		sorted := SortChannels(channels, domain.SortBySubscribers, domain.SortDesc)
		ids := []string{sorted[0].ChannelID, sorted[1].ChannelID, sorted[2].ChannelID, sorted[3].ChannelID}
		assert.Equal(t, []string{"c2", "c4", "c1", "c3"}, ids)
	})

	t.Run("title sorts case-insensitively ascending", func(t *testing.T) {
		sorted := SortChannels(channels, domain.SortByTitle, domain.SortAsc)
		assert.Equal(t, "Aqua Ch.", sorted[0].Title)
		assert.Equal(t, "citrus vt", sorted[2].Title)
	})

	t.Run("missing dates sort as epoch zero", func(t *testing.T) {
		sorted := SortChannels(channels, domain.SortByLastVideoAt, domain.SortAsc)
		assert.Equal(t, "c4", sorted[0].ChannelID)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		before := filterFixture()
		_ = SortChannels(before, domain.SortByViews, domain.SortDesc)
		assert.Equal(t, filterFixture(), before)
	})
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		page     int
		size     int
		expected []int
	}{
		{name: "first page", page: 1, size: 3, expected: []int{1, 2, 3}},
		{name: "middle page", page: 2, size: 3, expected: []int{4, 5, 6}},
		{name: "ragged last page", page: 3, size: 3, expected: []int{7}},
		{name: "page past the end", page: 4, size: 3, expected: []int{}},
		{name: "zero size", page: 1, size: 0, expected: []int{}},
		{name: "zero page", page: 0, size: 3, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Paginate(items, tt.page, tt.size))
		})
	}

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Paginate([]domain.Channel{}, 1, 25))
	})
}

func TestPaginateRoundTrip(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	for size := 1; size <= len(items)+1; size++ {
		var rebuilt []int
		for page := 1; page <= TotalPages(len(items), size); page++ {
			rebuilt = append(rebuilt, Paginate(items, page, size)...)
		}
		require.Equal(t, items, rebuilt, "page size %d", size)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 25))
	assert.Equal(t, 1, TotalPages(25, 25))
	assert.Equal(t, 2, TotalPages(26, 25))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestPageForFirstItem(t *testing.T) {
	tests := []struct {
		name     string
		oldPage  int
		oldSize  int
		newSize  int
		expected int
	}{
		{name: "same size keeps page", oldPage: 3, oldSize: 10, newSize: 10, expected: 3},
		{name: "doubling the size halves the page", oldPage: 4, oldSize: 10, newSize: 20, expected: 2},
		{name: "shrinking the size grows the page", oldPage: 2, oldSize: 50, newSize: 10, expected: 6},
		{name: "first page stays first", oldPage: 1, oldSize: 25, newSize: 5, expected: 1},
		{name: "invalid sizes fall back to page one", oldPage: 3, oldSize: 0, newSize: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageForFirstItem(tt.oldPage, tt.oldSize, tt.newSize))
		})
	}

	t.Run("new page always contains the old first item", func(t *testing.T) {
		for oldSize := 1; oldSize <= 30; oldSize++ {
			for newSize := 1; newSize <= 30; newSize++ {
				for oldPage := 1; oldPage <= 5; oldPage++ {
					firstIndex := (oldPage-1)*oldSize + 1
					newPage := PageForFirstItem(oldPage, oldSize, newSize)
					start := (newPage-1)*newSize + 1
					end := newPage * newSize
					require.True(t, start <= firstIndex && firstIndex <= end,
						"oldPage=%d oldSize=%d newSize=%d", oldPage, oldSize, newSize)
				}
			}
		}
	})
}
