package storage

import (
	"context"
)

// MemoryBackend keeps values in a process-local map. Nothing survives a
// restart; intended for tests and throwaway runs.
type MemoryBackend struct {
	values map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values: make(map[string][]byte),
	}
}

func (m *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (m *MemoryBackend) Set(ctx context.Context, key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)
	m.values[key] = copied
	return nil
}

func (m *MemoryBackend) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
