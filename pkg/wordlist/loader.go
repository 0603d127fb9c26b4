package wordlist

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 8

type poolKey struct {
	path  string
	limit int
}

// Loader caches loaded pools per (path, limit) so repeated generation calls
// reuse a single file read. Callers must not mutate the returned slices.
type Loader struct {
	cache *lru.Cache[poolKey, []string]
}

// NewLoader creates a Loader holding up to size pools. A non-positive size
// selects a small default.
func NewLoader(size int) (*Loader, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[poolKey, []string](size)
	if err != nil {
		return nil, fmt.Errorf("create word pool cache: %w", err)
	}
	return &Loader{cache: cache}, nil
}

// Load returns the pool for path, reading the file only on a cache miss.
func (l *Loader) Load(path string, limit int) ([]string, error) {
	key := poolKey{path: path, limit: limit}
	if words, ok := l.cache.Get(key); ok {
		return words, nil
	}

	words, err := Load(path, limit)
	if err != nil {
		return nil, err
	}
	l.cache.Add(key, words)

	return words, nil
}
