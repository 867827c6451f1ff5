package cache

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/maryrojas/rentabilidad-go/internal/domain"
)

// LoadFunc loads a dataset from a source path.
type LoadFunc func(path string) (*domain.Dataset, error)

// DatasetCache keeps the loaded dataset for reuse across interactions within
// a session (load-once, reuse-many). The entry is keyed on source identity
// (path, size, mtime), so a replaced file is re-read on the next query. A
// singleflight group collapses concurrent loads; reads after load are pure.
type DatasetCache struct {
	load  LoadFunc
	group singleflight.Group

	mu      sync.RWMutex
	key     string
	dataset *domain.Dataset
}

func NewDatasetCache(load LoadFunc) *DatasetCache {
	return &DatasetCache{load: load}
}

// Get returns the cached dataset for path, loading it if the cache is empty
// or the source changed since the last load. Load failures are not cached.
func (c *DatasetCache) Get(path string) (*domain.Dataset, error) {
	key := sourceKey(path)

	c.mu.RLock()
	if c.dataset != nil && c.key == key {
		ds := c.dataset
		c.mu.RUnlock()
		return ds, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		ds, err := c.load(path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.key = key
		c.dataset = ds
		c.mu.Unlock()

		return ds, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Dataset), nil
}

// Invalidate drops the cached dataset so the next Get reloads from disk.
func (c *DatasetCache) Invalidate() {
	c.mu.Lock()
	c.key = ""
	c.dataset = nil
	c.mu.Unlock()
}

func sourceKey(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		// Unstattable sources still get a stable key; the load itself
		// will surface the error.
		return path
	}
	return fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
}
