package store

import (
	"fmt"
	"sort"
	"sync"
)

// Memory implements Backend using in-memory maps (not persistent)
type Memory struct {
	buckets map[string]map[string][]byte
	mu      sync.RWMutex
}

// NewMemory creates an in-memory backend with the given buckets.
func NewMemory(buckets ...string) *Memory {
	m := &Memory{buckets: make(map[string]map[string][]byte, len(buckets))}
	for _, name := range buckets {
		m.buckets[name] = make(map[string][]byte)
	}
	return m
}

// Put stores a copy of value under key.
func (m *Memory) Put(bucket, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, ok := m.buckets[string(bucket)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	// Copy value to prevent external modifications
	bkt[string(key)] = append([]byte(nil), value...)
	return nil
}

// Get returns a copy of the value under key.
func (m *Memory) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, ok := m.buckets[string(bucket)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	value, ok := bkt[string(key)]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

// Delete removes key; deleting a missing key is not an error.
func (m *Memory) Delete(bucket, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, ok := m.buckets[string(bucket)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	delete(bkt, string(key))
	return nil
}

// ForEach visits the bucket in key order, matching bbolt.
func (m *Memory) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	bkt, ok := m.buckets[string(bucket)]
	if !ok {
		m.mu.RUnlock()
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	keys := make([]string, 0, len(bkt))
	for k := range bkt {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = append([]byte(nil), bkt[k]...)
	}
	m.mu.RUnlock()

	for i, k := range keys {
		if err := fn([]byte(k), values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op for memory backend
func (m *Memory) Close() error {
	return nil
}
