package persistence

import (
	"context"
	"sync"

	"bunny-video/domain/repository"
)

// MemorySettings keeps settings in process; writes are lost on restart
type MemorySettings struct {
	mu       sync.RWMutex
	values   map[string]string
	defaults map[string]string
}

func NewMemorySettings(defaults map[string]string) repository.ISettings {
	return &MemorySettings{values: map[string]string{}, defaults: defaults}
}

func (s *MemorySettings) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return s.defaults[key], nil
}

func (s *MemorySettings) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
