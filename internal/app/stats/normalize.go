package stats

import (
	"fmt"
	"strings"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-player-stats-service/internal/timeutil"
)

// FilterMonth keeps rows dated in key's year and month, in upstream order,
// and normalizes them. A row with an unreadable date fails the whole batch.
func FilterMonth(rows []providers.GameLogRow, key domainstats.MonthKey) ([]domainstats.GameRecord, error) {
	out := make([]domainstats.GameRecord, 0, len(rows))
	for _, row := range rows {
		day, err := timeutil.ParseGameDate(row.GameDate)
		if err != nil {
			return nil, fmt.Errorf("normalize game log: %w", err)
		}
		if day.Year() != key.Year || int(day.Month()) != key.Month {
			continue
		}
		out = append(out, Normalize(row, timeutil.FormatDate(day)))
	}
	return out, nil
}

// Normalize maps an upstream row to a GameRecord dated date.
func Normalize(row providers.GameLogRow, date string) domainstats.GameRecord {
	return domainstats.GameRecord{
		Date:    date,
		Matchup: row.Matchup,
		Result:  domainstats.Result(strings.ToUpper(strings.TrimSpace(row.WL))),
		Stats: domainstats.GameStats{
			Points:                 row.PTS,
			Rebounds:               row.REB,
			Assists:                row.AST,
			Steals:                 row.STL,
			Blocks:                 row.BLK,
			Minutes:                row.Min,
			FieldGoalsMade:         row.FGM,
			FieldGoalsAttempted:    row.FGA,
			ThreePointersMade:      row.FG3M,
			ThreePointersAttempted: row.FG3A,
			FreeThrowsMade:         row.FTM,
			FreeThrowsAttempted:    row.FTA,
		},
	}
}
