package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 10 * time.Second
	defaultLeagueID    = "00"
	seasonTypeRegular  = "Regular Season"

	gameLogPath    = "/playergamelog"
	allPlayersPath = "/commonallplayers"

	gameLogSet    = "PlayerGameLog"
	allPlayersSet = "CommonAllPlayers"

	maxErrorBody = 512
)

// stats.nba.com drops requests that do not look like they come from a browser.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:72.0) Gecko/20100101 Firefox/72.0",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.5",
	"Accept-Encoding": "gzip, deflate",
	"Connection":      "keep-alive",
	"Referer":         "https://www.nba.com/",
	"Origin":          "https://www.nba.com",
}
