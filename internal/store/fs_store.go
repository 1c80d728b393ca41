package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
)

// FSStore keeps one JSON file per month under dir; file mtime is the entry age.
type FSStore struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewFSStore constructs a file-backed store rooted at dir.
func NewFSStore(dir string, ttl time.Duration) *FSStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FSStore{dir: dir, ttl: ttl, now: time.Now}
}

// Dir exposes the cache root (primarily for testing).
func (s *FSStore) Dir() string {
	return s.dir
}

// Path returns the file path used for a month key.
func (s *FSStore) Path(month string) (string, error) {
	if month == "" || strings.ContainsAny(month, `/\`) || filepath.Base(month) != month || month == "." || month == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, month)
	}
	return filepath.Join(s.dir, fmt.Sprintf("stats_%s.json", month)), nil
}

func (s *FSStore) Load(month string) ([]domainstats.GameRecord, bool, error) {
	path, err := s.Path(month)
	if err != nil {
		return nil, false, &StorageError{Op: "load", Key: month, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &StorageError{Op: "load", Key: month, Err: err}
	}
	if !fresh(info.ModTime(), s.now(), s.ttl) {
		return nil, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, &StorageError{Op: "load", Key: month, Err: err}
	}
	var games []domainstats.GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, false, &StorageError{Op: "load", Key: month, Err: err}
	}
	if len(games) == 0 {
		return nil, false, nil
	}
	return games, true, nil
}

// Save overwrites the month's file atomically via a temp file and rename.
func (s *FSStore) Save(month string, games []domainstats.GameRecord) error {
	path, err := s.Path(month)
	if err != nil {
		return &StorageError{Op: "save", Key: month, Err: err}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Op: "save", Key: month, Err: err}
	}

	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Key: month, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return &StorageError{Op: "save", Key: month, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Key: month, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Key: month, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Key: month, Err: err}
	}
	return nil
}
