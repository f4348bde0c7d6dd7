// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, runtime and content settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Runtime names for the two supported execution contexts
const (
	RuntimeWeb    = "web"
	RuntimeHybrid = "hybrid"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// KV contains key-value store configuration
	KV KVConfig

	// Photos contains photo library configuration
	Photos PhotosConfig

	// Content contains remote content endpoints
	Content ContentConfig

	// LogFormat selects the logger implementation (text/json)
	LogFormat string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// KVConfig holds key-value store backend configuration
type KVConfig struct {
	// Store specifies the backend (memory/redis/sqlite)
	Store string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// PhotosConfig holds photo library configuration
type PhotosConfig struct {
	// Dir is the directory where captured photos are stored
	Dir string

	// DownloadsDir is where the share download fallback writes files
	DownloadsDir string

	// Runtime selects the environment strategy (web/hybrid)
	Runtime string
}

// ContentConfig holds remote content configuration
type ContentConfig struct {
	// ArticlesURL is the JSON endpoint serving articles
	ArticlesURL string

	// PlacesURL is the JSON endpoint serving places
	PlacesURL string

	// PreviewWordLimit bounds preview length in visible words
	PreviewWordLimit int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		KV: KVConfig{
			Store: getEnvOrDefault("KV_STORE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "memoria.db"),
		},
		Photos: PhotosConfig{
			Dir:          getEnvOrDefault("PHOTOS_DIR", "photos"),
			DownloadsDir: getEnvOrDefault("DOWNLOADS_DIR", "downloads"),
			Runtime:      getEnvOrDefault("RUNTIME", RuntimeWeb),
		},
		Content: ContentConfig{
			ArticlesURL:      getEnvOrDefault("ARTICLES_URL", ""),
			PlacesURL:        getEnvOrDefault("PLACES_URL", ""),
			PreviewWordLimit: getEnvAsIntOrDefault("PREVIEW_WORD_LIMIT", 40),
		},
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.KV.Store {
	case "memory", "sqlite":
	case "redis":
		if c.KV.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	default:
		return errors.New("kv store must be 'memory', 'redis' or 'sqlite'")
	}

	if c.KV.Store == "sqlite" && c.KV.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite store")
	}

	if c.Photos.Runtime != RuntimeWeb && c.Photos.Runtime != RuntimeHybrid {
		return errors.New("runtime must be 'web' or 'hybrid'")
	}

	if c.Photos.Dir == "" {
		return errors.New("photos directory cannot be empty")
	}

	if c.Content.PreviewWordLimit < 1 {
		return errors.New("preview word limit must be at least 1")
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
