// Package metacache persists resolved package descriptions between
// runs. The on-disk form is a single flat JSON object mapping
// "<source>:<candidate>" keys to either a description string or the
// not-found marker.
package metacache

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// NotFoundMarker is the sentinel stored when a source was queried for a
// candidate and found nothing. Distinct from "never queried", which is
// the absence of a key.
const NotFoundMarker = "__NOT_FOUND__"

// Cache is the in-memory metadata cache. Entries are only ever added;
// nothing evicts automatically.
type Cache struct {
	path    string
	entries map[string]string
}

// Load reads the cache file at path. A missing, empty, or corrupt file
// yields an empty cache; the next flush simply overwrites it.
func Load(path string) *Cache {
	c := &Cache{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return c
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return c
	}
	c.entries = entries
	return c
}

// Key builds the cache key for a (source, candidate) pair.
func Key(source, candidate string) string {
	return source + ":" + candidate
}

// Get returns the cached value for a (source, candidate) pair. The
// second return distinguishes "never queried" from a cached entry; the
// cached entry may itself be the not-found marker.
func (c *Cache) Get(source, candidate string) (string, bool) {
	v, ok := c.entries[Key(source, candidate)]
	return v, ok
}

// IsNegative reports whether the pair has a cached not-found entry.
func (c *Cache) IsNegative(source, candidate string) bool {
	v, ok := c.Get(source, candidate)
	return ok && v == NotFoundMarker
}

// Put records a positive description for a (source, candidate) pair.
func (c *Cache) Put(source, candidate, description string) {
	c.entries[Key(source, candidate)] = description
}

// PutNegative records the not-found marker for a (source, candidate)
// pair.
func (c *Cache) PutNegative(source, candidate string) {
	c.entries[Key(source, candidate)] = NotFoundMarker
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Save rewrites the whole cache file. Written to a temp file first and
// renamed into place so a crash mid-write cannot corrupt the cache.
func (c *Cache) Save() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}
