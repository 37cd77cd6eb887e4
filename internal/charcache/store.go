package charcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gofrs/flock"

	"holocron/internal/logging"
)

// ErrUnknownBackend reports an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown cache backend")

// backend reads and writes the whole mapping at a path.
type backend interface {
	name() string
	read(ctx context.Context, path string) (Cache, error)
	write(ctx context.Context, path string, cache Cache) error
	remove(path string) (bool, error)
}

// Store is the repository for the character cache.
type Store struct {
	path    string
	backend backend
	lock    *flock.Flock
	logger  *slog.Logger
}

// Open returns a store for the given backend ("json" or "sqlite") at path.
// Nothing is read or created until the first operation.
func Open(path, backendName string, logger *slog.Logger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path cannot be empty")
	}

	var b backend
	switch strings.ToLower(strings.TrimSpace(backendName)) {
	case "", "json":
		b = jsonBackend{}
	case "sqlite":
		b = sqliteBackend{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backendName)
	}

	return &Store{
		path:    path,
		backend: b,
		lock:    flock.New(path + ".lock"),
		logger:  logging.NewComponentLogger(logger, "charcache"),
	}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted mapping, or an empty mapping if the backing file
// does not exist. A present but unreadable file is an error.
func (s *Store) Load(ctx context.Context) (Cache, error) {
	var cache Cache
	err := s.withLock(func() error {
		exists, err := fileExists(s.path)
		if err != nil || !exists {
			return err
		}
		cache, err = s.backend.read(ctx, s.path)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load cache %s: %w", s.path, err)
	}
	if cache == nil {
		s.logger.Debug("cache file absent", logging.String("path", s.path))
		return Cache{}, nil
	}

	s.logger.Debug("loaded cache",
		logging.String("backend", s.backend.name()),
		logging.Int("entry_count", len(cache)),
		logging.String("path", s.path))
	return cache, nil
}

// Save overwrites the backing file with the full mapping.
func (s *Store) Save(ctx context.Context, cache Cache) error {
	if cache == nil {
		cache = Cache{}
	}
	err := s.withLock(func() error {
		return s.backend.write(ctx, s.path, cache)
	})
	if err != nil {
		return fmt.Errorf("save cache %s: %w", s.path, err)
	}

	s.logger.Debug("saved cache",
		logging.String("backend", s.backend.name()),
		logging.Int("entry_count", len(cache)),
		logging.String("path", s.path))
	return nil
}

// Clear deletes the backing file if present and reports whether anything was
// removed. The lock file stays so every process keeps locking the same inode.
func (s *Store) Clear() (bool, error) {
	var removed bool
	err := s.withLock(func() error {
		exists, err := fileExists(s.path)
		if err != nil || !exists {
			return err
		}
		removed, err = s.backend.remove(s.path)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("clear cache %s: %w", s.path, err)
	}

	s.logger.Debug("cleared cache", logging.Bool("removed", removed), logging.String("path", s.path))
	return removed, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat cache file: %w", err)
	}
}

func (s *Store) withLock(fn func() error) error {
	if err := ensureParentDir(s.path); err != nil {
		return err
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			logging.WarnWithContext(s.logger, "failed to release cache lock", "charcache_unlock_failed",
				logging.String("path", s.lock.Path()),
				logging.Error(err),
				logging.String(logging.FieldImpact, "other holocron processes may wait on the cache lock until this one exits"))
		}
	}()
	return fn()
}
