// Package analytics implements the pure derived-analytics engine over channel
// snapshots: dashboard statistics, filtering/sorting/pagination, per-cohort
// ranking, bucketed distributions and leaderboard selectors. Every function is
// a total, deterministic function of its arguments; the caller supplies the
// reference time.
package analytics

import (
	"math"
	"strconv"
	"time"
)

// FormatNumber renders a counter in the compact dashboard form:
// 1_234_567 -> "1.2M", 15_000 -> "15.0K", smaller values as plain numbers.
// NaN and infinities render as "0".
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	if n >= 1_000_000 {
		return strconv.FormatFloat(round1(n/1_000_000), 'f', 1, 64) + "M"
	}
	if n >= 1_000 {
		return strconv.FormatFloat(round1(n/1_000), 'f', 1, 64) + "K"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatDate renders an ISO timestamp as a short locale date ("Jan 2, 2006").
// Unparseable input yields "Unknown" instead of an error.
func FormatDate(iso string) string {
	ts, ok := parseTimestamp(iso)
	if !ok {
		return "Unknown"
	}
	return ts.Format("Jan 2, 2006")
}

// timestampLayouts are the formats the upstream feeds have been observed to
// emit, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a feed timestamp. The second return is false for empty
// or malformed input.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// epochMillis converts a feed timestamp to epoch milliseconds for sort
// comparisons; missing or invalid timestamps compare as 0.
func epochMillis(s string) int64 {
	ts, ok := parseTimestamp(s)
	if !ok {
		return 0
	}
	return ts.UnixMilli()
}

// round1 rounds half away from zero to one decimal place, matching the
// toFixed-style rounding the dashboard shares use.
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// share computes count/total*100 rounded to one decimal, with 0 for an empty
// denominator.
func share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

// trimName shortens a display name to 24 runes with an ellipsis, the width the
// chart axes can fit.
func trimName(name string) string {
	runes := []rune(name)
	if len(runes) <= 24 {
		return name
	}
	return string(runes[:24]) + "..."
}
