package testutil

import (
	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
)

// SampleGameRecord returns a minimal home win on the given date.
func SampleGameRecord(date string, points int) domainstats.GameRecord {
	return domainstats.GameRecord{
		Date:    date,
		Matchup: "LAL vs BOS",
		Result:  domainstats.Win,
		Stats: domainstats.GameStats{
			Points:              points,
			Rebounds:            7,
			Assists:             8,
			Minutes:             "34:10",
			FieldGoalsMade:      10,
			FieldGoalsAttempted: 19,
		},
	}
}

// SampleStatsResponse builds a StatsResponse from the provided dates.
func SampleStatsResponse(dates ...string) domainstats.StatsResponse {
	games := make([]domainstats.GameRecord, 0, len(dates))
	for i, d := range dates {
		games = append(games, SampleGameRecord(d, 20+i))
	}
	return domainstats.NewStatsResponse(games)
}
