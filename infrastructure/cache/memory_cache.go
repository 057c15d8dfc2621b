package cache

import (
	"context"
	"sync"
	"time"

	"bunny-video/domain/repository"
	"bunny-video/infrastructure/utils"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process transient store. Each Set replaces the whole entry.
type MemoryStore struct {
	entries sync.Map // key -> *memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: utils.GetCurrentTime}
}

// WithClock replaces the time source, mainly for tests.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

var _ repository.ITransientStore = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.entries.Load(key)
	if !ok {
		return nil, false, nil
	}
	entry := v.(*memoryEntry)
	if s.now().After(entry.expiresAt) {
		s.entries.CompareAndDelete(key, entry)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries.Store(key, &memoryEntry{value: stored, expiresAt: s.now().Add(ttl)})
	return nil
}

// Sweep deletes expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	removed := 0
	now := s.now()
	s.entries.Range(func(key, v any) bool {
		if now.After(v.(*memoryEntry).expiresAt) && s.entries.CompareAndDelete(key, v) {
			removed++
		}
		return true
	})
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep()
		}
	}
}
