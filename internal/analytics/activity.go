package analytics

import (
	"time"

	"vtuber-dash/internal/domain"
)

// ActiveWindow is the trailing upload window that separates active channels
// from inactive ones. Every aggregation that splits by activity shares this
// constant; do not re-derive the threshold elsewhere.
const ActiveWindow = 90 * 24 * time.Hour

// IsChannelActive reports whether the channel uploaded within the active
// window ending at now. Channels without a parseable last-upload timestamp are
// never active.
func IsChannelActive(ch domain.Channel, now time.Time) bool {
	ts, ok := parseTimestamp(ch.LastPublishedVideoAt)
	if !ok {
		return false
	}
	return ts.After(now.Add(-ActiveWindow))
}
