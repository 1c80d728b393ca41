package stats

import "strings"

// Result is the win/loss flag of a game.
type Result string

const (
	Win  Result = "W"
	Loss Result = "L"
)

// GameStats is the fixed-shape box score line for one game.
type GameStats struct {
	Points                 int    `json:"points"`
	Rebounds               int    `json:"rebounds"`
	Assists                int    `json:"assists"`
	Steals                 int    `json:"steals"`
	Blocks                 int    `json:"blocks"`
	Minutes                string `json:"minutes"`
	FieldGoalsMade         int    `json:"field_goals_made"`
	FieldGoalsAttempted    int    `json:"field_goals_attempted"`
	ThreePointersMade      int    `json:"three_pointers_made"`
	ThreePointersAttempted int    `json:"three_pointers_attempted"`
	FreeThrowsMade         int    `json:"free_throws_made"`
	FreeThrowsAttempted    int    `json:"free_throws_attempted"`
}

// GameRecord is one played game as exposed by the service.
type GameRecord struct {
	Date    string    `json:"date"`
	Matchup string    `json:"matchup"`
	Result  Result    `json:"wl"`
	Stats   GameStats `json:"stats"`
}

// IsHome reports whether the matchup denotes a home game ("vs"); "@" is away.
func (g GameRecord) IsHome() bool {
	return strings.Contains(g.Matchup, " vs") && !strings.Contains(g.Matchup, "@")
}

// StatsResponse is the payload returned by /api/stats/{month}.
type StatsResponse struct {
	Games []GameRecord `json:"games"`
}

// NewStatsResponse builds a StatsResponse; a nil slice is encoded as [].
func NewStatsResponse(games []GameRecord) StatsResponse {
	if games == nil {
		games = []GameRecord{}
	}
	return StatsResponse{Games: games}
}

// CloneGames returns a copy so callers cannot mutate shared slices.
func CloneGames(games []GameRecord) []GameRecord {
	if games == nil {
		return nil
	}
	out := make([]GameRecord, len(games))
	copy(out, games)
	return out
}
