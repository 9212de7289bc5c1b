package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable, all optional. The defaults reproduce the
// plain no-argument batch run exactly.
type Config struct {
	AssetDir         string
	LogLevel         string
	Port             string
	StaticCacheAge   time.Duration
	WatchDebounceRPS int
}

// loadConfig reads the environment, after loading .env if present.
// A missing .env is not an error.
func loadConfig() Config {
	_ = godotenv.Load()

	return Config{
		AssetDir:         getEnv(EnvAssetDir, "."),
		LogLevel:         getEnv(EnvLogLevel, "INFO"),
		Port:             getEnv(EnvPort, "8080"),
		StaticCacheAge:   getEnvDuration(EnvStaticCacheAge, 5*time.Minute),
		WatchDebounceRPS: getEnvInt(EnvWatchDebounceRPS, 2),
	}
}

// getEnv reads a string from the environment or returns a fallback.
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvDuration reads a time.Duration from the environment or returns a fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		logWarn("Invalid duration for %s: %v, using default %v", key, err, fallback)
		return fallback
	}
	return d
}

// getEnvInt reads an int from the environment or returns a fallback.
func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var i int
	_, err := fmt.Sscanf(val, "%d", &i)
	if err != nil {
		logWarn("Invalid int for %s: %v, using default %d", key, err, fallback)
		return fallback
	}
	return i
}
