// Package presets saves named generation configurations. Only the inputs of
// a dataset are stored; records are always regenerated from them.
package presets

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pkg.jsn.cam/recordgen/internal/store"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

// Bucket is the storage bucket holding presets.
const Bucket = "presets"

// ErrNotFound is returned for unknown preset IDs.
var ErrNotFound = errors.New("preset not found")

// Store manages presets on top of a storage backend.
type Store struct {
	backend store.Backend
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a preset store. The backend must have been opened with Bucket.
func New(backend store.Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger.With(slog.String("component", "presets")),
		now:     time.Now,
	}
}

// Create validates and saves a new preset.
func (s *Store) Create(req protocol.PresetCreateRequest) (protocol.Preset, error) {
	seed := strings.TrimSpace(string(req.Seed))
	if _, err := recordgen.ResolveEffectiveSeed(seed, 0); err != nil {
		return protocol.Preset{}, err
	}

	region := recordgen.ParseRegion(req.Region)
	p := protocol.Preset{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Region:    region.Code(),
		Seed:      seed,
		Errors:    float64(req.Errors),
		CreatedAt: s.now().UTC(),
	}

	if err := store.PutJSON(s.backend, Bucket, p.ID, p); err != nil {
		return protocol.Preset{}, fmt.Errorf("save preset: %w", err)
	}

	s.logger.Info("preset created", slog.String("id", p.ID), slog.String("name", p.Name))
	return p, nil
}

// Get returns the preset with the given ID.
func (s *Store) Get(id string) (protocol.Preset, error) {
	var p protocol.Preset
	ok, err := store.GetJSON(s.backend, Bucket, id, &p)
	if err != nil {
		return protocol.Preset{}, fmt.Errorf("load preset: %w", err)
	}
	if !ok {
		return protocol.Preset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// List returns all presets, oldest first.
func (s *Store) List() ([]protocol.Preset, error) {
	all, err := store.ListJSON[protocol.Preset](s.backend, Bucket)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	if all == nil {
		all = []protocol.Preset{}
	}
	return all, nil
}

// Delete removes the preset with the given ID.
func (s *Store) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.backend.Delete([]byte(Bucket), []byte(id)); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}

	s.logger.Info("preset deleted", slog.String("id", id))
	return nil
}
