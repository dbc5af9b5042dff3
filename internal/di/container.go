package di

import (
	"context"
	"errors"
	"fmt"

	"bookmarks-api/internal/auth"
	authconfig "bookmarks-api/internal/auth/config"
	"bookmarks-api/internal/bookmark"
	bookmarkconfig "bookmarks-api/internal/bookmark/config"
	"bookmarks-api/internal/shared/database"
	"bookmarks-api/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires the application's modules and shared resources
type Container struct {
	logger      logger.Logger
	mongoDB     *mongo.Database
	redisClient *redis.Client
	sequences   *database.SequenceGenerator

	authModule     *auth.Module
	bookmarkModule *bookmark.Module
}

// NewContainer creates a new dependency injection container
func NewContainer(log logger.Logger) *Container {
	return &Container{
		logger: log,
	}
}

// InitializeAuth initializes the auth module against the given database
func (c *Container) InitializeAuth(db *mongo.Database, cfg *authconfig.Config) error {
	c.mongoDB = db
	c.sequences = database.NewSequenceGenerator(db)

	module, err := auth.NewModule(db, c.sequences, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize auth module: %w", err)
	}

	c.authModule = module
	return nil
}

// InitializeBookmarks initializes the bookmark module. The auth module must
// be initialized first because bookmarks share its sequence generator and
// bearer guard.
func (c *Container) InitializeBookmarks(redisCfg *bookmarkconfig.RedisConfig) error {
	if c.authModule == nil || c.sequences == nil {
		return errors.New("auth module must be initialized before bookmarks")
	}

	if redisCfg != nil && redisCfg.RedisEnabled {
		c.redisClient = bookmarkconfig.NewRedisClient(redisCfg)
	}

	module, err := bookmark.NewModule(c.mongoDB, c.sequences, c.redisClient, redisCfg, c.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize bookmark module: %w", err)
	}

	c.bookmarkModule = module
	return nil
}

// GetAuthModule returns the auth module
func (c *Container) GetAuthModule() *auth.Module {
	return c.authModule
}

// GetBookmarkModule returns the bookmark module
func (c *Container) GetBookmarkModule() *bookmark.Module {
	return c.bookmarkModule
}

// HealthCheck pings the container's external dependencies
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.mongoDB != nil {
		if err := c.mongoDB.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("mongodb unhealthy: %w", err)
		}
	}
	if c.redisClient != nil {
		if err := c.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis unhealthy: %w", err)
		}
	}
	return nil
}

// Close releases resources held by the container
func (c *Container) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}
