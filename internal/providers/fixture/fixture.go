package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-player-stats-service/internal/timeutil"
)

// upstreamDateLayout mirrors the GAME_DATE form stats.nba.com sends.
const upstreamDateLayout = "Jan 02, 2006"

// Provider serves the bundled sample dataset. It also acts as an offline
// upstream so the whole live path runs without network access.
type Provider struct {
	months map[string][]domainstats.GameRecord
	log    []domainstats.GameRecord
}

// New creates a fixture provider over the bundled dataset.
func New() *Provider {
	return &Provider{
		months: sampleMonths,
		log:    offlineLog,
	}
}

// Lookup returns the sample games for a YYYY-MM month.
func (p *Provider) Lookup(month string) ([]domainstats.GameRecord, bool) {
	games, ok := p.months[month]
	if !ok || len(games) == 0 {
		return nil, false
	}
	return domainstats.CloneGames(games), true
}

// LookupGame finds a sample game by its exact YYYY-MM-DD date.
func (p *Provider) LookupGame(date string) (domainstats.GameRecord, bool) {
	if len(date) < 7 {
		return domainstats.GameRecord{}, false
	}
	for _, g := range p.months[date[:7]] {
		if g.Date == date {
			return g, true
		}
	}
	return domainstats.GameRecord{}, false
}

// Months lists the months the sample table covers.
func (p *Provider) Months() []string {
	out := make([]string, 0, len(p.months))
	for m := range p.months {
		out = append(out, m)
	}
	return out
}

// FetchGameLog returns the offline log rows for the requested season in the
// upstream shape. Only one player exists offline, so playerID is ignored.
func (p *Provider) FetchGameLog(ctx context.Context, playerID int, seasonID season.ID) ([]providers.GameLogRow, error) {
	_ = playerID
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := make([]providers.GameLogRow, 0)
	for _, g := range p.log {
		day, err := timeutil.ParseDate(g.Date)
		if err != nil {
			continue
		}
		if season.Resolve(day.Year(), int(day.Month())) != seasonID {
			continue
		}
		rows = append(rows, toRow(g, day))
	}
	return rows, nil
}

// FetchPlayers returns the single offline player.
func (p *Provider) FetchPlayers(ctx context.Context, seasonID season.ID) ([]players.Player, error) {
	_ = seasonID
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []players.Player{
		{ID: players.DefaultPlayerID, FullName: "LeBron James", IsActive: true},
	}, nil
}

func toRow(g domainstats.GameRecord, day time.Time) providers.GameLogRow {
	return providers.GameLogRow{
		GameDate: strings.ToUpper(day.Format(upstreamDateLayout)),
		Matchup:  g.Matchup,
		WL:       string(g.Result),
		Min:      g.Stats.Minutes,
		PTS:      g.Stats.Points,
		REB:      g.Stats.Rebounds,
		AST:      g.Stats.Assists,
		STL:      g.Stats.Steals,
		BLK:      g.Stats.Blocks,
		FGM:      g.Stats.FieldGoalsMade,
		FGA:      g.Stats.FieldGoalsAttempted,
		FG3M:     g.Stats.ThreePointersMade,
		FG3A:     g.Stats.ThreePointersAttempted,
		FTM:      g.Stats.FreeThrowsMade,
		FTA:      g.Stats.FreeThrowsAttempted,
	}
}
