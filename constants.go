package main

// Environment variable names
const (
	EnvAssetDir         = "ASSET_DIR"
	EnvLogLevel         = "LOG_LEVEL"
	EnvPort             = "PORT"
	EnvStaticCacheAge   = "STATIC_CACHE_AGE"
	EnvWatchDebounceRPS = "WATCH_DEBOUNCE_RPS"
)

// Route constants
const (
	RouteHealth = "/healthz"
)

// MinSuffix is inserted before the final extension of an output file.
const MinSuffix = ".min"

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
