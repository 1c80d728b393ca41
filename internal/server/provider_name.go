package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

type namedProvider interface {
	Name() string
}

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used across server wiring and provider factory to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := provider.(namedProvider); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
