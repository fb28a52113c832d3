package presets

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/recordgen/internal/store"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(store.NewMemory(Bucket), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Create(protocol.PresetCreateRequest{Name: " german noisy ", Region: "DE", Errors: 2.5, Seed: "5"})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "german noisy", p.Name)
	assert.Equal(t, "de", p.Region)
	assert.Equal(t, "5", p.Seed)
	assert.Equal(t, 2.5, p.Errors)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateRejectsBadSeed(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(protocol.PresetCreateRequest{Name: "x", Seed: "abc"})
	require.ErrorIs(t, err, recordgen.ErrInvalidSeed)
}

func TestCreateNormalizesUnknownRegion(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Create(protocol.PresetCreateRequest{Name: "x", Region: "xx", Seed: "1"})
	require.NoError(t, err)
	assert.Equal(t, "", p.Region)
}

func TestListOrdersByCreation(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.Create(protocol.PresetCreateRequest{Name: name, Seed: "1"})
		require.NoError(t, err)
	}

	all, err := s.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "third", all[2].Name)
}

func TestListEmpty(t *testing.T) {
	all, err := newTestStore(t).List()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Create(protocol.PresetCreateRequest{Name: "x", Seed: "1"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(p.ID))

	_, err = s.Get(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(p.ID), ErrNotFound)
}

func TestBoltBackedStore(t *testing.T) {
	backend, err := store.OpenBolt(filepath.Join(t.TempDir(), "presets.db"), Bucket)
	require.NoError(t, err)
	defer backend.Close()

	s := New(backend, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p, err := s.Create(protocol.PresetCreateRequest{Name: "persisted", Region: "by", Errors: 1, Seed: "77"})
	require.NoError(t, err)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "by", got.Region)
	assert.Equal(t, "77", got.Seed)
}
