package container

import (
	"vtuber-dash/internal/config"
	"vtuber-dash/internal/feed"
	"vtuber-dash/internal/service"
	"vtuber-dash/internal/service/youtube"
	"vtuber-dash/pkg/logger"
	"vtuber-dash/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
	FeedClient  *feed.Client
	Services    *service.Services
}

// New creates a new dependency injection container
func New(cfg *config.Config, log *logger.Logger) (*Container, error) {
	// Initialize Redis client if Redis URL is configured
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	feedClient := feed.NewClient(cfg.ChannelFeedURL, cfg.VideoFeedBaseURL, log)

	channelService := service.NewChannelService(feedClient, redisClient, log)
	analyticsService := service.NewAnalyticsService(channelService, log)
	videoService := service.NewVideoService(feedClient, redisClient, log)
	youtubeService := youtube.NewService(cfg.YouTubeAPIKey, redisClient, log)

	services := &service.Services{
		Channel:   channelService,
		Analytics: analyticsService,
		Video:     videoService,
		YouTube:   youtubeService,
	}

	return &Container{
		Config:      cfg,
		Logger:      log,
		RedisClient: redisClient,
		FeedClient:  feedClient,
		Services:    services,
	}, nil
}

// GetChannelService returns the channel service
func (c *Container) GetChannelService() service.ChannelService {
	return c.Services.Channel
}

// GetAnalyticsService returns the analytics service
func (c *Container) GetAnalyticsService() service.AnalyticsService {
	return c.Services.Analytics
}

// GetVideoService returns the video service
func (c *Container) GetVideoService() service.VideoService {
	return c.Services.Video
}

// GetYouTubeService returns the YouTube service
func (c *Container) GetYouTubeService() service.YouTubeService {
	return c.Services.YouTube
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}
