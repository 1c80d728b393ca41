package fixture

import domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"

func game(date, matchup string, wl domainstats.Result, pts, reb, ast, stl, blk int, min string, fgm, fga, tpm, tpa, ftm, fta int) domainstats.GameRecord {
	return domainstats.GameRecord{
		Date:    date,
		Matchup: matchup,
		Result:  wl,
		Stats: domainstats.GameStats{
			Points:                 pts,
			Rebounds:               reb,
			Assists:                ast,
			Steals:                 stl,
			Blocks:                 blk,
			Minutes:                min,
			FieldGoalsMade:         fgm,
			FieldGoalsAttempted:    fga,
			ThreePointersMade:      tpm,
			ThreePointersAttempted: tpa,
			FreeThrowsMade:         ftm,
			FreeThrowsAttempted:    fta,
		},
	}
}

// sampleMonths is served directly for months the upstream cannot answer.
var sampleMonths = map[string][]domainstats.GameRecord{
	"2024-11": {
		game("2024-11-20", "LAL vs DEN", domainstats.Win, 35, 11, 9, 2, 1, "36:45", 13, 21, 3, 7, 6, 7),
		game("2024-11-22", "LAL vs PHX", domainstats.Win, 31, 8, 12, 1, 2, "35:30", 12, 20, 2, 5, 5, 6),
	},
	"2024-02": {
		game("2024-02-01", "LAL vs GSW", domainstats.Win, 32, 8, 12, 2, 1, "36:24", 12, 20, 4, 8, 4, 5),
		game("2024-02-03", "LAL @ NYK", domainstats.Win, 28, 10, 11, 1, 2, "38:12", 11, 18, 3, 7, 3, 4),
	},
	"2024-01": {
		game("2024-01-05", "LAL vs MEM", domainstats.Win, 35, 7, 9, 1, 2, "37:45", 13, 22, 3, 6, 6, 7),
		game("2024-01-07", "LAL @ LAC", domainstats.Loss, 26, 9, 8, 2, 1, "35:18", 10, 19, 2, 5, 4, 6),
	},
	"2023-11": {
		game("2023-11-20", "LAL vs HOU", domainstats.Win, 37, 8, 6, 2, 1, "38:42", 14, 23, 2, 5, 7, 8),
		game("2023-11-22", "LAL @ DAL", domainstats.Win, 30, 9, 11, 1, 2, "37:15", 11, 19, 3, 6, 5, 6),
	},
}

// offlineLog backs FetchGameLog in offline mode. It extends the sample
// months so the live path has months the sample table does not cover.
var offlineLog = []domainstats.GameRecord{
	game("2023-10-24", "LAL @ DEN", domainstats.Loss, 21, 8, 5, 1, 0, "29:05", 10, 16, 1, 4, 0, 1),
	game("2023-10-26", "LAL vs PHX", domainstats.Win, 21, 8, 5, 1, 1, "35:21", 8, 12, 2, 3, 3, 4),
	game("2023-11-20", "LAL vs HOU", domainstats.Win, 37, 8, 6, 2, 1, "38:42", 14, 23, 2, 5, 7, 8),
	game("2023-11-22", "LAL @ DAL", domainstats.Win, 30, 9, 11, 1, 2, "37:15", 11, 19, 3, 6, 5, 6),
	game("2024-01-05", "LAL vs MEM", domainstats.Win, 35, 7, 9, 1, 2, "37:45", 13, 22, 3, 6, 6, 7),
	game("2024-01-07", "LAL @ LAC", domainstats.Loss, 26, 9, 8, 2, 1, "35:18", 10, 19, 2, 5, 4, 6),
	game("2024-02-01", "LAL vs GSW", domainstats.Win, 32, 8, 12, 2, 1, "36:24", 12, 20, 4, 8, 4, 5),
	game("2024-02-03", "LAL @ NYK", domainstats.Win, 28, 10, 11, 1, 2, "38:12", 11, 18, 3, 7, 3, 4),
	game("2024-03-02", "LAL @ DEN", domainstats.Loss, 26, 9, 9, 1, 0, "36:18", 11, 20, 2, 6, 2, 3),
	game("2024-03-04", "LAL vs WAS", domainstats.Win, 29, 9, 10, 2, 1, "35:00", 11, 19, 3, 6, 4, 5),
	game("2024-11-20", "LAL vs DEN", domainstats.Win, 35, 11, 9, 2, 1, "36:45", 13, 21, 3, 7, 6, 7),
	game("2024-11-22", "LAL vs PHX", domainstats.Win, 31, 8, 12, 1, 2, "35:30", 12, 20, 2, 5, 5, 6),
	game("2024-12-01", "LAL @ UTA", domainstats.Win, 28, 7, 8, 1, 1, "34:40", 10, 18, 3, 7, 5, 6),
	game("2024-12-03", "LAL vs MIA", domainstats.Loss, 24, 6, 10, 2, 0, "36:02", 9, 20, 2, 6, 4, 4),
}
