package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Layouts accepted for upstream game dates, tried in order.
var gameDateLayouts = []string{
	"Jan 02, 2006", // stats.nba.com playergamelog, e.g. "NOV 20, 2024"
	"Jan 2, 2006",
	DateLayout,
	"2006-01-02T15:04:05",
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGameDate parses the date forms upstream sends for GAME_DATE.
func ParseGameDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized game date %q", value)
}
