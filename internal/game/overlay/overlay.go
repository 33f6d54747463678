// Package overlay records player-caused deviations from the generated world.
// The store is sparse: only touched cells have entries, and an explicit Empty
// entry ("a token was removed here") is distinct from no entry at all ("defer
// to generation"). Every mutation rewrites the whole blob in the backing
// store, which is the sole durability guarantee.
package overlay

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/gridtoken/internal/core"
)

// ErrCorrupt marks a persisted overlay blob that cannot be parsed. Fatal at
// startup: progress must not be dropped silently.
var ErrCorrupt = errors.New("overlay: persisted state is corrupt")

// BlobStore is the external persistence contract. Load reports absence via
// the bool rather than an error, so "never saved" is not a failure.
type BlobStore interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}

// Store is the sparse coordinate → cell-state override mapping.
type Store struct {
	key     string
	blobs   BlobStore
	entries map[core.Coord]core.CellState
}

// New creates an empty store persisting under the given blob key.
func New(blobs BlobStore, key string) *Store {
	return &Store{
		key:     key,
		blobs:   blobs,
		entries: make(map[core.Coord]core.CellState),
	}
}

// Load replaces the in-memory mapping with the persisted blob. An absent blob
// means a fresh world and leaves the store empty. A blob that exists but does
// not parse returns ErrCorrupt (wrapped) and leaves the store untouched.
func (s *Store) Load() error {
	raw, ok, err := s.blobs.Load(s.key)
	if err != nil {
		return fmt.Errorf("overlay: cannot load %q: %w", s.key, err)
	}
	if !ok {
		return nil
	}

	var blob map[string]core.CellState
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorrupt, s.key, err)
	}

	entries := make(map[core.Coord]core.CellState, len(blob))
	for k, state := range blob {
		coord, err := core.ParseKey(k)
		if err != nil {
			return fmt.Errorf("%w: key %q: %v", ErrCorrupt, s.key, err)
		}
		entries[coord] = state
	}

	s.entries = entries
	return nil
}

// Get returns the override entry for the coordinate, if one exists.
func (s *Store) Get(c core.Coord) (core.CellState, bool) {
	state, ok := s.entries[c]
	return state, ok
}

// Set inserts or replaces the override entry and synchronously persists the
// whole store before returning. On a persist failure the in-memory entry is
// rolled back so memory and disk never disagree.
func (s *Store) Set(c core.Coord, state core.CellState) error {
	prev, had := s.entries[c]
	s.entries[c] = state

	if err := s.persist(); err != nil {
		if had {
			s.entries[c] = prev
		} else {
			delete(s.entries, c)
		}
		return err
	}
	return nil
}

// Len returns the number of override entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// persist serializes the full mapping as one JSON blob and saves it.
func (s *Store) persist() error {
	blob := make(map[string]core.CellState, len(s.entries))
	for coord, state := range s.entries {
		blob[coord.Key()] = state
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("overlay: cannot serialize: %w", err)
	}
	if err := s.blobs.Save(s.key, string(data)); err != nil {
		return fmt.Errorf("overlay: cannot persist %q: %w", s.key, err)
	}
	return nil
}
