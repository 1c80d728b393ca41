// Package season maps calendar months to league season identifiers.
package season

import "fmt"

// StartMonth is the first calendar month of a season (October).
const StartMonth = 10

// ID is a YYYY-YY season identifier such as "2024-25".
type ID string

// Resolve returns the season containing the given year and month.
func Resolve(year, month int) ID {
	if month >= StartMonth {
		return format(year)
	}
	return format(year - 1)
}

// Previous returns the season that starts in year-1.
// For January through September this is the same season Resolve returns.
func Previous(year int) ID {
	return format(year - 1)
}

func format(start int) ID {
	return ID(fmt.Sprintf("%d-%02d", start, (start+1)%100))
}
