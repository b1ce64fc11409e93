package store

import (
	"encoding/json"
	"sync"
)

// NewMemory returns an in-memory KV. Primarily for tests; documents round-trip
// through JSON so serialization behaves exactly like the disk adapter.
func NewMemory() KV {
	return &memoryKV{data: make(map[string][]byte)}
}

type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memoryKV) Load(key string, v interface{}) (bool, error) {
	m.mu.Lock()
	data, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryKV) Store(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.data[key] = data
	m.mu.Unlock()
}

func (m *memoryKV) Erase(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
