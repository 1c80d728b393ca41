package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/testutil"
)

type stubService struct {
	monthly  domainstats.StatsResponse
	game     domainstats.GameRecord
	gameErr  error
	months   []string
	gameDate string
}

func (s *stubService) MonthlyStats(ctx context.Context, month string) domainstats.StatsResponse {
	_ = ctx
	s.months = append(s.months, month)
	return s.monthly
}

func (s *stubService) GameByDate(date string) (domainstats.GameRecord, error) {
	s.gameDate = date
	return s.game, s.gameErr
}

func newTestHandler(svc *stubService) *Handler {
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(svc, "LeBron James", logger)
}

func TestRoot(t *testing.T) {
	h := newTestHandler(&stubService{})

	rr := testutil.Serve(http.HandlerFunc(h.Root), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["message"] != "LeBron James Stats API" {
		t.Fatalf("unexpected message %q", resp["message"])
	}

	rr = testutil.Serve(http.HandlerFunc(h.Root), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubService{})

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "healthy" {
		t.Fatalf("expected status healthy, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	h.MarkShuttingDown()
	rr = testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestMonthlyStats(t *testing.T) {
	svc := &stubService{monthly: testutil.SampleStatsResponse("2024-11-20", "2024-11-22")}
	h := newTestHandler(svc)

	rr := testutil.Serve(http.HandlerFunc(h.MonthlyStats), http.MethodGet, "/api/stats/2024-11", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domainstats.StatsResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Games) != 2 || resp.Games[0].Date != "2024-11-20" {
		t.Fatalf("unexpected games %+v", resp.Games)
	}
	if len(svc.months) != 1 || svc.months[0] != "2024-11" {
		t.Fatalf("expected service called with month, got %v", svc.months)
	}
}

func TestMonthlyStatsEmptyListIsStillOK(t *testing.T) {
	h := newTestHandler(&stubService{monthly: domainstats.NewStatsResponse(nil)})

	rr := testutil.Serve(http.HandlerFunc(h.MonthlyStats), http.MethodGet, "/api/stats/bogus", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Body.String(); got != "{\"games\":[]}\n" {
		t.Fatalf("expected empty games array, got %q", got)
	}
}

func TestMonthlyStatsRejectsNestedPath(t *testing.T) {
	svc := &stubService{}
	h := newTestHandler(svc)

	for _, path := range []string{"/api/stats/", "/api/stats/2024/11"} {
		rr := testutil.Serve(http.HandlerFunc(h.MonthlyStats), http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	}
	if len(svc.months) != 0 {
		t.Fatalf("expected no service calls")
	}
}

func TestGameByDate(t *testing.T) {
	svc := &stubService{game: testutil.SampleGameRecord("2024-11-20", 35)}
	h := newTestHandler(svc)

	rr := testutil.Serve(http.HandlerFunc(h.GameByDate), http.MethodGet, "/api/game/2024-11-20", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var game domainstats.GameRecord
	testutil.DecodeJSON(t, rr, &game)
	if game.Stats.Points != 35 || svc.gameDate != "2024-11-20" {
		t.Fatalf("unexpected game %+v for %s", game, svc.gameDate)
	}
}

func TestGameByDateErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    int
		message string
	}{
		{name: "not found", err: fmt.Errorf("game on 2099-01-01: %w", domainstats.ErrNotFound), want: http.StatusNotFound, message: "game not found"},
		{name: "unexpected", err: errors.New("sample data not configured"), want: http.StatusInternalServerError, message: "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubService{gameErr: tt.err})
			req := httptest.NewRequest(http.MethodGet, "/api/game/2099-01-01", nil)
			req.Header.Set("X-Request-ID", "req-1")
			rr := testutil.ServeRequest(http.HandlerFunc(h.GameByDate), req)

			testutil.AssertStatus(t, rr, tt.want)
			var resp map[string]string
			testutil.DecodeJSON(t, rr, &resp)
			if resp["error"] != tt.message || resp["requestId"] != "req-1" {
				t.Fatalf("unexpected error body %v", resp)
			}
		})
	}
}

func TestNonGetMethodsReturn405(t *testing.T) {
	h := newTestHandler(&stubService{})
	routes := map[string]http.HandlerFunc{
		"/":                    h.Root,
		"/health":              h.Health,
		"/api/stats/2024-11":   h.MonthlyStats,
		"/api/game/2024-11-20": h.GameByDate,
	}
	for path, fn := range routes {
		rr := testutil.Serve(fn, http.MethodPost, path, nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
		if rr.Header().Get("Allow") == "" {
			t.Fatalf("expected Allow header for %s", path)
		}
	}
}
