package prefs

import (
	"context"
	"sync"
)

// MemoryStore keeps encoded records for the life of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Load(_ context.Context, key string) (Preferences, bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return Preferences{}, false, nil
	}
	p, err := decode(raw)
	if err != nil {
		return Preferences{}, false, err
	}
	return p, true, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, p Preferences) error {
	raw, err := encode(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
