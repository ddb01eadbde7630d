package caching

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var invalidFilenameChar = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// Cache provides a simple file-based document cache with a TTL.
// Documents live at <path>/<key>.html so the cache directory doubles as a raw-data archive.
type Cache struct {
	path string
	ttl  time.Duration // 0 = entries never expire
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// Path is the file a key is stored in.
func (c *Cache) Path(key string) string {
	return filepath.Join(c.path, invalidFilenameChar.ReplaceAllString(key, "_")+".html")
}

// Get retrieves an item from the cache.
// It returns the data and true if the item is found and not expired.
// Otherwise, it returns nil and false.
func (c *Cache) Get(key string) ([]byte, bool) {
	filePath := c.Path(key)

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false // Cache miss
	}

	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}

	return data, true
}

// GetStale retrieves an item regardless of its age.
func (c *Cache) GetStale(key string) ([]byte, bool) {
	data, err := os.ReadFile(c.Path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set adds an item to the cache.
func (c *Cache) Set(key string, data []byte) error {
	if err := os.WriteFile(c.Path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Has reports whether key is stored, fresh or not.
func (c *Cache) Has(key string) bool {
	_, err := os.Stat(c.Path(key))
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}
