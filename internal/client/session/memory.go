package session

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests and for callers
// that explicitly opt out of durable sessions.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	r.data[key] = v
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string][]byte)
	return nil
}
