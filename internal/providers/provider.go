package providers

import (
	"context"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
)

// GameLogRow is one raw upstream game-log line, before month filtering.
// GameDate is kept as sent ("NOV 20, 2024" or an ISO date).
type GameLogRow struct {
	GameDate string
	Matchup  string
	WL       string
	Min      string
	PTS      int
	REB      int
	AST      int
	STL      int
	BLK      int
	FGM      int
	FGA      int
	FG3M     int
	FG3A     int
	FTM      int
	FTA      int
}

// GameLogProvider fetches a player's regular-season game log for one season.
type GameLogProvider interface {
	FetchGameLog(ctx context.Context, playerID int, season season.ID) ([]GameLogRow, error)
}

// PlayerDirectory lists players known to the upstream for a season.
type PlayerDirectory interface {
	FetchPlayers(ctx context.Context, season season.ID) ([]players.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameLogProvider
	PlayerDirectory
}
