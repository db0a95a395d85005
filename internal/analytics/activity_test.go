package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vtuber-dash/internal/domain"
)

func TestIsChannelActive(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lastVideo string
		expected  bool
	}{
		{name: "no upload history", lastVideo: "", expected: false},
		{name: "unparseable timestamp", lastVideo: "soon", expected: false},
		{name: "uploaded yesterday", lastVideo: "2026-07-31T12:00:00Z", expected: true},
		{name: "uploaded years ago", lastVideo: "2020-01-01T00:00:00Z", expected: false},
		{name: "exactly at the window boundary", lastVideo: "2026-05-03T12:00:00Z", expected: false},
		{name: "just inside the window", lastVideo: "2026-05-03T12:00:01Z", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := domain.Channel{ChannelID: "c1", LastPublishedVideoAt: tt.lastVideo}
			assert.Equal(t, tt.expected, IsChannelActive(ch, now))
		})
	}
}
