package stats

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var monthKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ErrNotFound is returned when no game matches a lookup.
var ErrNotFound = errors.New("game not found")

// FormatError reports a malformed month key.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid month %q: expected YYYY-MM", e.Value)
}

// AsFormatError extracts a FormatError when present.
func AsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// MonthKey is a parsed YYYY-MM calendar month.
type MonthKey struct {
	Year  int
	Month int
}

// ParseMonthKey parses YYYY-MM with a month in 1..12.
func ParseMonthKey(value string) (MonthKey, error) {
	m := monthKeyPattern.FindStringSubmatch(value)
	if m == nil {
		return MonthKey{}, &FormatError{Value: value}
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return MonthKey{}, &FormatError{Value: value}
	}
	return MonthKey{Year: year, Month: month}, nil
}

// String formats the key back to YYYY-MM.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}
