// Package store persists per-source dependency snapshots between builds.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DepsStore = (*Store)(nil)

// Store implements ports.DepsStore using a flat JSON file, keyed by target
// name and then by source path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]map[string]domain.SourceDepsInfo
}

// NewStore creates a DepsStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]map[string]domain.SourceDepsInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(domain.ErrStoreReadFailed, err.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(domain.ErrStoreReadFailed, err.Error())
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	return nil
}

// Get retrieves the dependency snapshot for one source file of a target.
// A missing entry is (nil, nil), not an error.
func (s *Store) Get(target, source string) (*domain.SourceDepsInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sources, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	info, ok := sources[source]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores a dependency snapshot and persists the store to disk.
func (s *Store) Put(target string, info domain.SourceDepsInfo) error {
	s.mu.Lock()
	sources, ok := s.cache[target]
	if !ok {
		sources = make(map[string]domain.SourceDepsInfo)
		s.cache[target] = sources
	}
	sources[info.Source] = info
	s.mu.Unlock()

	return s.save()
}
