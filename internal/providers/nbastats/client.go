package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-player-stats-service/internal/domain/season"
	"github.com/preston-bernstein/nba-player-stats-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches player game logs and the player directory from stats.nba.com.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchGameLog retrieves the regular-season game log for a player and season.
func (c *Client) FetchGameLog(ctx context.Context, playerID int, seasonID season.ID) ([]providers.GameLogRow, error) {
	q := url.Values{}
	q.Set("PlayerID", strconv.Itoa(playerID))
	q.Set("Season", string(seasonID))
	q.Set("SeasonType", seasonTypeRegular)

	set, err := c.fetchResultSet(ctx, gameLogPath, q, gameLogSet)
	if err != nil {
		return nil, err
	}
	return mapGameLog(set)
}

// FetchPlayers retrieves every player listed for a season, active or not.
func (c *Client) FetchPlayers(ctx context.Context, seasonID season.ID) ([]players.Player, error) {
	q := url.Values{}
	q.Set("LeagueID", defaultLeagueID)
	q.Set("Season", string(seasonID))
	q.Set("IsOnlyCurrentSeason", "0")

	set, err := c.fetchResultSet(ctx, allPlayersPath, q, allPlayersSet)
	if err != nil {
		return nil, err
	}
	return mapPlayers(set)
}

func (c *Client) fetchResultSet(ctx context.Context, path string, q url.Values, name string) (resultSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return resultSet{}, err
	}
	req.URL.RawQuery = q.Encode()
	applyBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return resultSet{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return resultSet{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	body, err := decodedBody(resp)
	if err != nil {
		return resultSet{}, fmt.Errorf("nbastats: decode body: %w", err)
	}
	defer body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return resultSet{}, fmt.Errorf("nbastats: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload resultSetsResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return resultSet{}, fmt.Errorf("nbastats: decode %s: %w", path, err)
	}
	set, ok := payload.find(name)
	if !ok {
		return resultSet{}, fmt.Errorf("nbastats: %s returned no result sets", path)
	}
	return set, nil
}
