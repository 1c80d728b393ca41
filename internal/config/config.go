package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	Provider       string
	RequestTimeout Duration
	CORSOrigins    []string
	Player         PlayerConfig
	Cache          CacheConfig
	NBAStats       NBAStatsConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first; real env vars win.
func Load() Config {
	loadDotEnv(".env")

	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		Provider:       strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		RequestTimeout: durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		CORSOrigins:    listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Player:         loadPlayer(),
		Cache:          loadCache(),
		NBAStats:       loadNBAStats(),
		Metrics:        loadMetrics(),
	}
}

func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}
