package nbastats

import "strings"

type resultSetsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// find returns the named set, or the first set when none matches.
func (r resultSetsResponse) find(name string) (resultSet, bool) {
	for _, s := range r.ResultSets {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	if len(r.ResultSets) > 0 {
		return r.ResultSets[0], true
	}
	return resultSet{}, false
}

// columns maps upper-cased header names to row positions.
func (s resultSet) columns() map[string]int {
	idx := make(map[string]int, len(s.Headers))
	for i, h := range s.Headers {
		idx[strings.ToUpper(h)] = i
	}
	return idx
}
