package players

// DefaultPlayerID is LeBron James on stats.nba.com, used when the directory
// lookup cannot find the configured name.
const DefaultPlayerID = 2544

// Player is an entry in the upstream player directory.
type Player struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	IsActive bool   `json:"isActive"`
}
