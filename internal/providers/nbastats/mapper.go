package nbastats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

func mapGameLog(set resultSet) ([]providers.GameLogRow, error) {
	cols := set.columns()
	for _, required := range []string{"GAME_DATE", "MATCHUP"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("nbastats: %s missing column %s", set.Name, required)
		}
	}

	rows := make([]providers.GameLogRow, 0, len(set.RowSet))
	for _, raw := range set.RowSet {
		get := func(name string) any {
			if i, ok := cols[name]; ok && i < len(raw) {
				return raw[i]
			}
			return nil
		}
		rows = append(rows, providers.GameLogRow{
			GameDate: toString(get("GAME_DATE")),
			Matchup:  toString(get("MATCHUP")),
			WL:       toString(get("WL")),
			Min:      toString(get("MIN")), // "MM:SS" text or a whole-minute number
			PTS:      toInt(get("PTS")),
			REB:      toInt(get("REB")),
			AST:      toInt(get("AST")),
			STL:      toInt(get("STL")),
			BLK:      toInt(get("BLK")),
			FGM:      toInt(get("FGM")),
			FGA:      toInt(get("FGA")),
			FG3M:     toInt(get("FG3M")),
			FG3A:     toInt(get("FG3A")),
			FTM:      toInt(get("FTM")),
			FTA:      toInt(get("FTA")),
		})
	}
	return rows, nil
}

func mapPlayers(set resultSet) ([]players.Player, error) {
	cols := set.columns()
	idCol, ok := cols["PERSON_ID"]
	if !ok {
		return nil, fmt.Errorf("nbastats: %s missing column PERSON_ID", set.Name)
	}
	nameCol, ok := cols["DISPLAY_FIRST_LAST"]
	if !ok {
		return nil, fmt.Errorf("nbastats: %s missing column DISPLAY_FIRST_LAST", set.Name)
	}
	statusCol, hasStatus := cols["ROSTERSTATUS"]

	out := make([]players.Player, 0, len(set.RowSet))
	for _, raw := range set.RowSet {
		if idCol >= len(raw) || nameCol >= len(raw) {
			continue
		}
		p := players.Player{
			ID:       toInt(raw[idCol]),
			FullName: toString(raw[nameCol]),
		}
		if hasStatus && statusCol < len(raw) {
			p.IsActive = toInt(raw[statusCol]) == 1
		}
		if p.ID > 0 && p.FullName != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(math.Round(t))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f))
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}
}
