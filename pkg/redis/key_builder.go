package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// Feed snapshot key builders
func (kb *KeyBuilder) KeyChannelSnapshot() string {
	return kb.BuildKey(KeyChannelSnapshot)
}

func (kb *KeyBuilder) KeyUpcomingVideos() string {
	return kb.BuildKey(KeyUpcomingVideos)
}

func (kb *KeyBuilder) KeyLiveVideos() string {
	return kb.BuildKey(KeyLiveVideos)
}

func (kb *KeyBuilder) KeyRankingVideos(window string) string {
	return kb.BuildKey(fmt.Sprintf(KeyRankingVideos, window))
}

// YouTube upstream key builders
func (kb *KeyBuilder) KeyChannelRSS(channelID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyChannelRSS, channelID))
}

func (kb *KeyBuilder) KeyPlaylistRSS(playlistID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyPlaylistRSS, playlistID))
}

func (kb *KeyBuilder) KeyChannelOverview(channelID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyChannelOverview, channelID))
}

// Generic key builders for custom patterns
func (kb *KeyBuilder) KeyCustom(pattern string, args ...interface{}) string {
	key := fmt.Sprintf(pattern, args...)
	return kb.BuildKey(key)
}
