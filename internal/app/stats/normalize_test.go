package stats

import (
	"testing"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

func TestFilterMonthKeepsOnlyRequestedMonth(t *testing.T) {
	rows := []providers.GameLogRow{
		{GameDate: "JAN 31, 2024", Matchup: "LAL vs. CHI"},
		{GameDate: "FEB 01, 2024", Matchup: "LAL vs. GSW", WL: "W", PTS: 32, FG3M: 4, FG3A: 8},
		{GameDate: "2024-02-03", Matchup: "LAL @ NYK", WL: "W", PTS: 28},
		{GameDate: "MAR 01, 2024", Matchup: "LAL @ DEN"},
		{GameDate: "FEB 01, 2023", Matchup: "LAL vs. NOP"},
	}

	games, err := FilterMonth(rows, domainstats.MonthKey{Year: 2024, Month: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 February 2024 games, got %+v", games)
	}
	if games[0].Date != "2024-02-01" || games[1].Date != "2024-02-03" {
		t.Fatalf("expected ISO dates in upstream order, got %s, %s", games[0].Date, games[1].Date)
	}
	if games[0].Stats.ThreePointersMade != 4 || games[0].Stats.ThreePointersAttempted != 8 {
		t.Fatalf("unexpected stats %+v", games[0].Stats)
	}
}

func TestFilterMonthRejectsUnreadableDates(t *testing.T) {
	_, err := FilterMonth([]providers.GameLogRow{{GameDate: ""}}, domainstats.MonthKey{Year: 2024, Month: 2})
	if err == nil {
		t.Fatal("expected error for unreadable date")
	}
}

func TestFilterMonthEmpty(t *testing.T) {
	games, err := FilterMonth(nil, domainstats.MonthKey{Year: 2024, Month: 2})
	if err != nil || len(games) != 0 {
		t.Fatalf("expected empty result, got %v err %v", games, err)
	}
}

func TestNormalizeMapsEveryField(t *testing.T) {
	row := providers.GameLogRow{
		Matchup: "LAL @ DAL", WL: " l ", Min: "37:15",
		PTS: 30, REB: 9, AST: 11, STL: 1, BLK: 2,
		FGM: 11, FGA: 19, FG3M: 3, FG3A: 6, FTM: 5, FTA: 6,
	}
	got := Normalize(row, "2023-11-22")
	want := domainstats.GameRecord{
		Date:    "2023-11-22",
		Matchup: "LAL @ DAL",
		Result:  domainstats.Loss,
		Stats: domainstats.GameStats{
			Points: 30, Rebounds: 9, Assists: 11, Steals: 1, Blocks: 2, Minutes: "37:15",
			FieldGoalsMade: 11, FieldGoalsAttempted: 19,
			ThreePointersMade: 3, ThreePointersAttempted: 6,
			FreeThrowsMade: 5, FreeThrowsAttempted: 6,
		},
	}
	if got != want {
		t.Fatalf("unexpected record\n got %+v\nwant %+v", got, want)
	}
}
