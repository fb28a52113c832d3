package store

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

// backendTestSuite runs the same checks against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func(t *testing.T, buckets ...string) Backend) {
	t.Run("PutAndGet", func(t *testing.T) {
		b := newBackend(t, "test")

		if err := b.Put([]byte("test"), []byte("k"), []byte("v")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := b.Get([]byte("test"), []byte("k"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, []byte("v")) {
			t.Errorf("expected %q, got %q", "v", got)
		}
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		b := newBackend(t, "test")

		got, err := b.Get([]byte("test"), []byte("missing"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil for missing key, got %q", got)
		}
	})

	t.Run("UnknownBucket", func(t *testing.T) {
		b := newBackend(t, "test")

		if err := b.Put([]byte("nope"), []byte("k"), []byte("v")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("expected ErrBucketNotFound from Put, got %v", err)
		}
		if _, err := b.Get([]byte("nope"), []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("expected ErrBucketNotFound from Get, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		b := newBackend(t, "test")

		b.Put([]byte("test"), []byte("k"), []byte("v"))
		if err := b.Delete([]byte("test"), []byte("k")); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if got, _ := b.Get([]byte("test"), []byte("k")); got != nil {
			t.Errorf("expected key to be deleted, got %q", got)
		}
		if err := b.Delete([]byte("test"), []byte("k")); err != nil {
			t.Errorf("deleting a missing key should succeed: %v", err)
		}
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		b := newBackend(t, "test")

		for _, k := range []string{"c", "a", "b"} {
			b.Put([]byte("test"), []byte(k), []byte(k+k))
		}

		var keys []string
		err := b.ForEach([]byte("test"), func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}
		if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
			t.Errorf("expected ordered keys [a b c], got %v", keys)
		}
	})

	t.Run("JSONHelpers", func(t *testing.T) {
		b := newBackend(t, "items")

		type item struct {
			Name string `json:"name"`
		}
		if err := PutJSON(b, "items", "1", item{Name: "one"}); err != nil {
			t.Fatalf("PutJSON failed: %v", err)
		}
		PutJSON(b, "items", "2", item{Name: "two"})

		var got item
		ok, err := GetJSON(b, "items", "1", &got)
		if err != nil || !ok {
			t.Fatalf("GetJSON failed: ok=%v err=%v", ok, err)
		}
		if got.Name != "one" {
			t.Errorf("expected name one, got %q", got.Name)
		}

		ok, err = GetJSON(b, "items", "3", &got)
		if err != nil || ok {
			t.Errorf("expected missing key to report false, got ok=%v err=%v", ok, err)
		}

		all, err := ListJSON[item](b, "items")
		if err != nil {
			t.Fatalf("ListJSON failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("expected 2 items, got %d", len(all))
		}
	})
}

func TestMemoryBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T, buckets ...string) Backend {
		return NewMemory(buckets...)
	})
}

func TestBoltBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T, buckets ...string) Backend {
		b, err := OpenBolt(filepath.Join(t.TempDir(), "test.db"), buckets...)
		if err != nil {
			t.Fatalf("failed to open bolt backend: %v", err)
		}
		t.Cleanup(func() { b.Close() })
		return b
	})
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.db")

	b, err := OpenBolt(path, "test")
	if err != nil {
		t.Fatal(err)
	}
	b.Put([]byte("test"), []byte("k"), []byte("v"))
	b.Close()

	b, err = OpenBolt(path, "test")
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	got, err := b.Get([]byte("test"), []byte("k"))
	if err != nil || string(got) != "v" {
		t.Errorf("expected persisted value, got %q (err %v)", got, err)
	}
}

func TestOpen(t *testing.T) {
	b, err := Open("", "x")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*Memory); !ok {
		t.Errorf("empty path should open a memory backend, got %T", b)
	}
}
