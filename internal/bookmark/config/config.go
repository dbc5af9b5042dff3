package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// RedisConfig holds the connection settings for the bookmark activity stream.
// Redis is optional: with RedisEnabled false the activity log is not wired.
type RedisConfig struct {
	RedisEnabled bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Host         string `env:"REDIS_HOST" envDefault:"localhost"`
	Port         string `env:"REDIS_PORT" envDefault:"6379"`
	Password     string `env:"REDIS_PASSWORD" envDefault:""`
	Database     int    `env:"REDIS_DATABASE" envDefault:"0"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	StreamName   string `env:"REDIS_ACTIVITY_STREAM" envDefault:"bookmarks:activity"`
	StreamMaxLen int64  `env:"REDIS_ACTIVITY_STREAM_MAXLEN" envDefault:"10000"`
}

// LoadRedisConfig loads the Redis configuration from environment variables.
func LoadRedisConfig() (*RedisConfig, error) {
	cfg := &RedisConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load redis configuration: %w", err)
	}
	return cfg, nil
}

// Addr returns the host:port address for the Redis client.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
