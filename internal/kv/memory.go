package kv

import (
	"context"
	"sync"
)

// Memory is a process-local Storage. The zero value is not usable; call
// NewMemory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Storage.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Storage.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Driver implements Storage.
func (m *Memory) Driver() Driver { return DriverMemory }

// Close implements Storage.
func (m *Memory) Close() error { return nil }
