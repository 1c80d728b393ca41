package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envRequestTimeout   = "STATS_REQUEST_TIMEOUT"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envCacheBackend     = "CACHE_BACKEND"
	envCacheDir         = "CACHE_DIR"
	envCacheTTL         = "CACHE_TTL"
	envCacheWarm        = "CACHE_WARM_INTERVAL"
	envPlayerName       = "PLAYER_NAME"
	envPlayerID         = "PLAYER_ID"
	envNBAStatsBaseURL  = "NBA_STATS_BASE_URL"
	envNBAStatsTimeout  = "NBA_STATS_TIMEOUT"
	envNBAStatsAttempts = "NBA_STATS_MAX_ATTEMPTS"
	envNBAStatsInterval = "NBA_STATS_MIN_INTERVAL"

	defaultPort     = "8000"
	defaultProvider = "nbastats"
	// Covers two seasons of retries (politeness + timeout + backoff per attempt).
	defaultRequestTimeout = 2 * Duration(time.Minute)
	defaultCORSOrigins    = "*"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "nba-player-stats-service"

	defaultCacheBackend = "fs"
	defaultCacheDir     = "cache"
	defaultCacheTTL     = Duration(time.Hour)

	defaultPlayerName = "LeBron James"

	defaultNBAStatsBaseURL  = "https://stats.nba.com/stats"
	defaultNBAStatsTimeout  = 10 * Duration(time.Second)
	defaultNBAStatsAttempts = 3
)
