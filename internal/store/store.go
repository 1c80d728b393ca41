// Package store caches monthly game lists with a read-time freshness window.
package store

import (
	"errors"
	"fmt"
	"time"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
)

// DefaultTTL is how long a cached month stays fresh.
const DefaultTTL = time.Hour

// Store is the month-keyed cache contract.
// Load reports ok only for a fresh entry holding at least one game; missing
// and expired entries are both (nil, false, nil).
type Store interface {
	Load(month string) ([]domainstats.GameRecord, bool, error)
	Save(month string, games []domainstats.GameRecord) error
}

// StorageError reports a cache read or write failure.
type StorageError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("cache %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AsStorageError extracts a StorageError when present.
func AsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ErrInvalidKey is wrapped when a month key cannot be used as a file name.
var ErrInvalidKey = errors.New("invalid cache key")

func fresh(written, now time.Time, ttl time.Duration) bool {
	return now.Sub(written) < ttl
}
