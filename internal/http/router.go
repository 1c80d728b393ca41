package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-player-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Anything unmatched lands on
// Root, which answers 404 for every path but "/".
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Root)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/api/stats/", handler.MonthlyStats)
	mux.HandleFunc("/api/game/", handler.GameByDate)
	return mux
}
