package config

import "strings"

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL     string
	Timeout     Duration
	MaxAttempts int

	// MinInterval spaces outbound calls apart; zero disables the limiter.
	MinInterval Duration
}

// PlayerConfig names the single player the service reports on.
// A positive ID skips the startup directory lookup.
type PlayerConfig struct {
	Name string
	ID   int
}

// CacheConfig controls where monthly results are cached and for how long.
type CacheConfig struct {
	Backend string // "fs" or "memory"
	Dir     string
	TTL     Duration

	// WarmInterval re-resolves the current month in the background; zero disables it.
	WarmInterval Duration
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:     envOrDefault(envNBAStatsBaseURL, defaultNBAStatsBaseURL),
		Timeout:     durationEnvOrDefault(envNBAStatsTimeout, defaultNBAStatsTimeout),
		MaxAttempts: intEnvOrDefault(envNBAStatsAttempts, defaultNBAStatsAttempts),
		MinInterval: durationEnvOrDefault(envNBAStatsInterval, 0),
	}
}

func loadPlayer() PlayerConfig {
	return PlayerConfig{
		Name: envOrDefault(envPlayerName, defaultPlayerName),
		ID:   intEnvOrDefault(envPlayerID, 0),
	}
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend: strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend)),
		Dir:     envOrDefault(envCacheDir, defaultCacheDir),
		TTL:     durationEnvOrDefault(envCacheTTL, defaultCacheTTL),

		WarmInterval: durationEnvOrDefault(envCacheWarm, 0),
	}
}
