// Package config loads application settings from environment variables,
// with an optional .env overlay for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Session store kinds.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds the runtime settings shared by the web server and the
// terminal client.
type Config struct {
	AppName string
	Port    string // ":8080" form
	Env     string // DEV, PROD

	// Account store. Empty DatabaseURL selects the in-memory store, which
	// only makes sense for development and tests.
	DatabaseURL string

	// Session store.
	SessionStore string // memory | redis
	RedisURL     string
	SessionTTL   time.Duration

	// Signup policy.
	MinPasswordLength int

	// Local HTML5 games directory.
	GamesDir string
}

// Load reads the configuration, first overlaying variables from a .env
// file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppName:           getEnv("APP_NAME", "MediaLounge"),
		Port:              normalizePort(getEnv("PORT", "8080")),
		Env:               getEnv("ENV", "DEV"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SessionStore:      getEnv("SESSION_STORE", SessionStoreMemory),
		RedisURL:          getEnv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		SessionTTL:        time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
		MinPasswordLength: getEnvAsInt("MIN_PASSWORD_LENGTH", 6),
		GamesDir:          getEnv("GAMES_DIR", "./static/games"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func normalizePort(port string) string {
	if port == "" {
		port = "8080"
	}
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}
