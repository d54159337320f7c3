package storage

import "sync"

var _ Port = (*MemoryPort)(nil)

// MemoryPort is an in-memory implementation of Port. It is the default for
// tests and for running without a data directory.
type MemoryPort struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryPort creates an empty in-memory storage port.
func NewMemoryPort() *MemoryPort {
	return &MemoryPort{
		values: make(map[string][]byte),
	}
}

// Load retrieves a stored value by key.
func (p *MemoryPort) Load(key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.values[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored slice.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Save stores a value, overwriting any previous value for the key.
func (p *MemoryPort) Save(key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	p.values[key] = stored
	return nil
}

// Remove deletes a key. Missing keys are ignored.
func (p *MemoryPort) Remove(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.values, key)
	return nil
}

// Keys returns the currently stored key names. Used by tests to assert that
// a reset removed every persisted value.
func (p *MemoryPort) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	return keys
}
