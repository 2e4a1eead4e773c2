// Package config loads storefront settings from the environment.
package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	// APIBaseURL is the gateway root the per-service paths hang off.
	APIBaseURL      string
	UpstreamTimeout time.Duration

	// Cart storage backend: memory|file|redis|postgres.
	StorageBackend string
	StoragePath    string // file backend
	RedisAddr      string // redis backend
	PostgresDSN    string // postgres backend

	// RabbitMQURL empty means no events are published.
	RabbitMQURL string
}

func Load() Config {
	return Config{
		APIBaseURL:      getenv("API_BASE_URL", "http://localhost:8080/api"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		StorageBackend: getenv("CART_STORAGE", "file"),
		StoragePath:    getenv("CART_STORAGE_PATH", ".storefront/state.json"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		PostgresDSN:    getenv("POSTGRES_DSN", ""),

		RabbitMQURL: getenv("RABBITMQ_URL", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
