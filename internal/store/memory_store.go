package store

import (
	"sync"
	"time"

	domainstats "github.com/preston-bernstein/nba-player-stats-service/internal/domain/stats"
)

type memoryEntry struct {
	games   []domainstats.GameRecord
	written time.Time
}

// MemoryStore keeps a thread-safe month cache in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(month string) ([]domainstats.GameRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[month]
	if !ok || len(entry.games) == 0 || !fresh(entry.written, s.now(), s.ttl) {
		return nil, false, nil
	}
	return domainstats.CloneGames(entry.games), true, nil
}

func (s *MemoryStore) Save(month string, games []domainstats.GameRecord) error {
	if month == "" {
		return &StorageError{Op: "save", Key: month, Err: ErrInvalidKey}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[month] = memoryEntry{
		games:   domainstats.CloneGames(games),
		written: s.now(),
	}
	return nil
}

// Len reports how many entries are held, fresh or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
