package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

// StubProvider is a test double for providers.DataProvider.
// Rows and SeasonErrs are keyed by season; Err applies to every call.
type StubProvider struct {
	Rows       map[season.ID][]providers.GameLogRow
	SeasonErrs map[season.ID]error
	Err        error
	Players    []players.Player
	Calls      atomic.Int32
	// Release, when set, blocks each call until it is closed.
	Release chan struct{}
	Started chan struct{}

	mu      sync.Mutex
	seasons []season.ID
}

// FetchGameLog returns configured rows and error while tracking calls.
func (s *StubProvider) FetchGameLog(ctx context.Context, playerID int, seasonID season.ID) ([]providers.GameLogRow, error) {
	_ = playerID
	s.Calls.Add(1)
	s.mu.Lock()
	s.seasons = append(s.seasons, seasonID)
	s.mu.Unlock()

	if s.Started != nil {
		select {
		case s.Started <- struct{}{}:
		default:
		}
	}
	if s.Release != nil {
		select {
		case <-s.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.SeasonErrs[seasonID]; err != nil {
		return nil, err
	}
	return s.Rows[seasonID], nil
}

// FetchPlayers returns the configured directory.
func (s *StubProvider) FetchPlayers(ctx context.Context, seasonID season.ID) ([]players.Player, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.seasons = append(s.seasons, seasonID)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Players, nil
}

// Seasons returns the seasons requested so far, in call order.
func (s *StubProvider) Seasons() []season.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]season.ID, len(s.seasons))
	copy(out, s.seasons)
	return out
}

// StubStore is a test double for the month cache.
type StubStore struct {
	Entries   map[string][]domainstats.GameRecord
	LoadErr   error
	SaveErr   error
	SaveCalls atomic.Int32
	LoadCalls atomic.Int32

	mu sync.Mutex
}

// Load returns the entry for month when present.
func (s *StubStore) Load(month string) ([]domainstats.GameRecord, bool, error) {
	s.LoadCalls.Add(1)
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	games, ok := s.Entries[month]
	if !ok || len(games) == 0 {
		return nil, false, nil
	}
	return domainstats.CloneGames(games), true, nil
}

// Save records the entry unless SaveErr is set.
func (s *StubStore) Save(month string, games []domainstats.GameRecord) error {
	s.SaveCalls.Add(1)
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Entries == nil {
		s.Entries = make(map[string][]domainstats.GameRecord)
	}
	s.Entries[month] = domainstats.CloneGames(games)
	return nil
}

// Saved returns the stored entry for month.
func (s *StubStore) Saved(month string) ([]domainstats.GameRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	games, ok := s.Entries[month]
	return games, ok
}
