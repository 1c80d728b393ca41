package nbastats

import "testing"

func TestMapGameLogRequiresDateColumn(t *testing.T) {
	_, err := mapGameLog(resultSet{Name: "PlayerGameLog", Headers: []string{"MATCHUP"}})
	if err == nil {
		t.Fatal("expected missing column error")
	}
}

func TestMapGameLogToleratesShortRows(t *testing.T) {
	set := resultSet{
		Headers: []string{"GAME_DATE", "MATCHUP", "PTS"},
		RowSet:  [][]any{{"NOV 20, 2024", "LAL vs. DEN"}},
	}
	rows, err := mapGameLog(set)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 1 || rows[0].PTS != 0 || rows[0].Matchup != "LAL vs. DEN" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestMapPlayersRequiresColumns(t *testing.T) {
	if _, err := mapPlayers(resultSet{Headers: []string{"DISPLAY_FIRST_LAST"}}); err == nil {
		t.Fatal("expected missing PERSON_ID error")
	}
	if _, err := mapPlayers(resultSet{Headers: []string{"PERSON_ID"}}); err == nil {
		t.Fatal("expected missing name error")
	}
}

func TestValueCoercion(t *testing.T) {
	if toInt(29.0) != 29 || toInt("12") != 12 || toInt("x") != 0 || toInt(nil) != 0 || toInt(true) != 1 {
		t.Fatal("unexpected int coercion")
	}
	if toString(35.0) != "35" || toString(35.5) != "35.5" || toString(nil) != "" || toString(" W ") != "W" {
		t.Fatal("unexpected string coercion")
	}
}

func TestFindFallsBackToFirstSet(t *testing.T) {
	resp := resultSetsResponse{ResultSets: []resultSet{{Name: "Other"}}}
	set, ok := resp.find("PlayerGameLog")
	if !ok || set.Name != "Other" {
		t.Fatalf("expected first set fallback, got %+v", set)
	}
	if _, ok := (resultSetsResponse{}).find("x"); ok {
		t.Fatal("expected no set for empty response")
	}
}
