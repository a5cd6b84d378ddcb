// Package cache implements a TTL file cache for external API responses.
// Entries are JSON blobs keyed by a hash of the logical request, with the
// file's modification time serving as the freshness timestamp.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store is a file-backed cache rooted at a namespace directory.
type Store struct {
	dir    string
	logger *zap.Logger
	flight singleflight.Group
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the cache's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// hashKey maps the full request string to an on-disk filename. The whole
// SHA-256 digest is used so distinct requests can never collide.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Fetch returns the cached value for key if its age is below ttl,
// otherwise invokes fn and caches the result.
//
// A corrupt or unreadable entry is treated as a miss. A failed cache write
// is swallowed: caching is best-effort and must never fail the caller.
// When fn itself fails, the zero value of T and fn's error are returned
// and nothing is persisted. Concurrent misses for the same key are
// collapsed into a single fn invocation, so two racing fetches cannot
// write divergent entries.
func Fetch[T any](s *Store, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	hashed := hashKey(key)
	path := filepath.Join(s.dir, hashed+".json")

	v, err, _ := s.flight.Do(hashed, func() (interface{}, error) {
		if value, ok := read[T](s, path, ttl); ok {
			return value, nil
		}

		value, err := fn()
		if err != nil {
			return value, err
		}

		if werr := s.write(path, value); werr != nil {
			s.logger.Debug("cache write failed",
				zap.String("path", path), zap.Error(werr))
		}
		return value, nil
	})

	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// read loads a fresh entry from path. It returns ok=false for missing,
// stale, or corrupt entries.
func read[T any](s *Store, path string, ttl time.Duration) (T, bool) {
	var value T

	info, err := os.Stat(path)
	if err != nil {
		return value, false
	}
	if time.Since(info.ModTime()) >= ttl {
		return value, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Debug("cache entry corrupt, treating as miss",
			zap.String("path", path), zap.Error(err))
		var zero T
		return zero, false
	}
	return value, true
}

// write persists value at path via a temp file and rename, so readers
// never observe a partially written entry.
func (s *Store) write(path string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "entry-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
