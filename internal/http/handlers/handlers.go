package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"sync/atomic"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
)

const (
	statsPrefix = "/api/stats/"
	gamePrefix  = "/api/game/"
)

// StatsService is the pipeline the handlers serve.
type StatsService interface {
	MonthlyStats(ctx context.Context, month string) domainstats.StatsResponse
	GameByDate(date string) (domainstats.GameRecord, error)
}

// Handler wires HTTP routes to the stats service.
type Handler struct {
	svc        StatsService
	playerName string
	logger     *slog.Logger
	draining   atomic.Bool
}

// NewHandler constructs a Handler. playerName feeds the root message.
func NewHandler(svc StatsService, playerName string, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, playerName: playerName, logger: logger}
}

// MarkShuttingDown makes Health report 503 from now on.
func (h *Handler) MarkShuttingDown() {
	h.draining.Store(true)
}

// Root answers the liveness message.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if !allowGet(w, r, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": h.playerName + " Stats API"}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowGet(w, r, h.logger) {
		return
	}
	if h.draining.Load() || r.Context().Err() != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "healthy"}, h.logger)
}

// MonthlyStats returns the games for /api/stats/{month}. Unresolvable
// months still answer 200 with an empty list.
func (h *Handler) MonthlyStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	month, ok := requestutil.PathParam(r.URL.Path, statsPrefix)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if !allowGet(w, r, h.logger) {
		return
	}

	resp := h.svc.MonthlyStats(r.Context(), month)
	logging.Info(loggerFromContext(r, h.logger), "served monthly stats",
		logging.FieldMonth, month,
		logging.FieldCount, len(resp.Games),
	)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// GameByDate returns the sample game for /api/game/{date}.
func (h *Handler) GameByDate(w nethttp.ResponseWriter, r *nethttp.Request) {
	date, ok := requestutil.PathParam(r.URL.Path, gamePrefix)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if !allowGet(w, r, h.logger) {
		return
	}

	game, err := h.svc.GameByDate(date)
	switch {
	case errors.Is(err, domainstats.ErrNotFound):
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
	case err != nil:
		logging.Error(loggerFromContext(r, h.logger), "game lookup failed", err, logging.FieldDate, date)
		writeError(w, r, nethttp.StatusInternalServerError, "internal server error", h.logger)
	default:
		writeJSON(w, nethttp.StatusOK, game, h.logger)
	}
}

func allowGet(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) bool {
	if r.Method == nethttp.MethodGet || r.Method == nethttp.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
