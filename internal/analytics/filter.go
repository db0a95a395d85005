package analytics

import (
	"sort"
	"strings"
	"time"

	"vtuber-dash/internal/domain"
)

// FilterChannels applies the dashboard filter clauses conjunctively: substring
// search on the title (case-insensitive), the original-cohort restriction, and
// the activity restriction. The input slice is not modified.
func FilterChannels(channels []domain.Channel, filters domain.DashboardFilters, now time.Time) []domain.Channel {
	search := strings.ToLower(filters.Search)

	out := make([]domain.Channel, 0, len(channels))
	for _, ch := range channels {
		if search != "" && !strings.Contains(strings.ToLower(ch.Title), search) {
			continue
		}
		if filters.ShowOriginalOnly && ch.IsRebranded {
			continue
		}
		if !filters.ShowInactive && !IsChannelActive(ch, now) {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// SortChannels returns a sorted copy of channels ordered by the given field
// and direction. Date fields compare by epoch milliseconds with invalid
// timestamps as 0, string fields compare case-insensitively. Equal keys break
// by channel ID ascending so output is deterministic regardless of feed order.
func SortChannels(channels []domain.Channel, field domain.SortField, order domain.SortOrder) []domain.Channel {
	sorted := make([]domain.Channel, len(channels))
	copy(sorted, channels)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareByField(sorted[i], sorted[j], field)
		if cmp == 0 {
			return sorted[i].ChannelID < sorted[j].ChannelID
		}
		if order == domain.SortAsc {
			return cmp < 0
		}
		return cmp > 0
	})

	return sorted
}

func compareByField(a, b domain.Channel, field domain.SortField) int {
	switch field {
	case domain.SortByViews:
		return compareInt64(a.Views, b.Views)
	case domain.SortByPublishedAt:
		return compareInt64(epochMillis(a.PublishedAt), epochMillis(b.PublishedAt))
	case domain.SortByLastVideoAt:
		return compareInt64(epochMillis(a.LastPublishedVideoAt), epochMillis(b.LastPublishedVideoAt))
	case domain.SortByTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	default:
		return compareInt64(a.Subscribers, b.Subscribers)
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Paginate slices out the requested 1-based page. Pages past the end and
// non-positive sizes yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages reports how many pages of pageSize cover totalItems.
func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 || totalItems < 1 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// PageForFirstItem returns the page under newSize that still contains the
// first item visible on oldPage under oldSize, so a page-size change keeps the
// reader's place.
func PageForFirstItem(oldPage, oldSize, newSize int) int {
	if oldPage < 1 || oldSize < 1 || newSize < 1 {
		return 1
	}
	firstIndex := (oldPage-1)*oldSize + 1
	return (firstIndex + newSize - 1) / newSize
}
