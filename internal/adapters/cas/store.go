// Package cas implements the fingerprint store used to skip unchanged documents.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is the location of the state file relative to the working directory.
const DefaultPath = ".stitch/state.json"

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore using a flat JSON file.
// The file is read on the first Get or Put, not at construction.
type Store struct {
	path   string
	mu     sync.Mutex
	loaded bool
	cache  map[string]string
}

// NewStore creates a new FingerprintStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]string),
	}
}

// ensureLoaded reads the file once. The caller must hold the lock.
// A failed read is retried on the next call.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	if err := s.load(); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *Store) load() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read fingerprint store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	cache := make(map[string]string)
	if err := json.Unmarshal(data, &cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal fingerprint store"), "path", s.path)
	}
	s.cache = cache

	return nil
}

// save writes the cache to disk. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal fingerprint store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for fingerprint store"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write fingerprint store"), "path", s.path)
	}

	return nil
}

// Get returns the fingerprint stored for key, or "" if there is none.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return s.cache[key], nil
}

// Put stores the fingerprint for key and persists the store.
func (s *Store) Put(key, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if s.cache[key] == fingerprint {
		return nil
	}
	s.cache[key] = fingerprint
	return s.save()
}
