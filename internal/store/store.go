// Package store provides the key/value backends behind saved presets.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBucketNotFound is returned when an operation names an unknown bucket.
var ErrBucketNotFound = errors.New("bucket not found")

// Backend is a bucketed key/value store. Buckets are created when the backend
// is opened.
type Backend interface {
	Put(bucket, key, value []byte) error
	// Get returns nil, nil for a missing key.
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error
	ForEach(bucket []byte, fn func(k, v []byte) error) error
	Close() error
}

// Open returns a bbolt backend at path, or an in-memory backend when path is
// empty.
func Open(path string, buckets ...string) (Backend, error) {
	if path == "" {
		return NewMemory(buckets...), nil
	}
	return OpenBolt(path, buckets...)
}

// PutJSON stores v JSON-encoded under key.
func PutJSON(b Backend, bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return b.Put([]byte(bucket), []byte(key), data)
}

// GetJSON decodes the value under key into v. It reports false when the key
// does not exist.
func GetJSON(b Backend, bucket, key string, v any) (bool, error) {
	data, err := b.Get([]byte(bucket), []byte(key))
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return true, nil
}

// ListJSON decodes every value of bucket.
func ListJSON[T any](b Backend, bucket string) ([]T, error) {
	var out []T
	err := b.ForEach([]byte(bucket), func(_, v []byte) error {
		var item T
		if err := json.Unmarshal(v, &item); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		out = append(out, item)
		return nil
	})
	return out, err
}
