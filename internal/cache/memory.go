package cache

import (
	"context"
	"sync"
	"time"

	"github.com/avetrov/contentpulse/internal/model"
)

// DefaultMaxEntries bounds the in-memory cache across distinct
// channel/count combinations.
const DefaultMaxEntries = 256

type memoryEntry struct {
	storedAt time.Time
	items    []model.ContentItem
}

// MemoryStore is a mutex-guarded in-process TTL cache. Expired entries are
// treated as absent on read; they are only physically removed when the
// capacity bound forces an eviction.
type MemoryStore struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]memoryEntry
	now        func() time.Time
}

func NewMemoryStore(ttl time.Duration, maxEntries int) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]memoryEntry),
		now:        time.Now,
	}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Get(_ context.Context, channelID string, count int) ([]model.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[entryKey(channelID, count)]
	if !ok || s.now().Sub(e.storedAt) > s.ttl {
		return nil, false
	}
	return e.items, true
}

func (s *MemoryStore) Put(_ context.Context, channelID string, count int, items []model.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entryKey(channelID, count)
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.evictLocked()
	}
	s.entries[key] = memoryEntry{storedAt: s.now(), items: items}
}

// evictLocked drops all expired entries; if none have expired it drops the
// oldest one so the map never exceeds maxEntries.
func (s *MemoryStore) evictLocked() {
	now := s.now()
	dropped := false
	for k, e := range s.entries {
		if now.Sub(e.storedAt) > s.ttl {
			delete(s.entries, k)
			dropped = true
		}
	}
	if dropped {
		return
	}

	var oldestKey string
	var oldestAt time.Time
	for k, e := range s.entries {
		if oldestKey == "" || e.storedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.storedAt
		}
	}
	if oldestKey != "" {
		delete(s.entries, oldestKey)
	}
}
