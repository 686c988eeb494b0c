package storage

import (
	"context"
	"sync"
)

// MemoryGateway keeps payloads in a map. It backs tests and the ephemeral
// "memory" storage mode.
type MemoryGateway struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailSave, when set, is returned by every Save call. Tests use it to
	// exercise the store's rollback path.
	FailSave error
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{data: make(map[string][]byte)}
}

// Save stores a copy of the payload under key.
func (g *MemoryGateway) Save(_ context.Context, key string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSave != nil {
		return g.FailSave
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	g.data[key] = cp
	return nil
}

// Load returns the payload under key, or (nil, nil) when never written.
func (g *MemoryGateway) Load(_ context.Context, key string) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	data, ok := g.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// Close is a no-op for the memory backend.
func (g *MemoryGateway) Close(_ context.Context) error {
	return nil
}
