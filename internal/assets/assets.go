// Package assets resolves asset paths against a list of search roots.
package assets

import (
	"os"
	"path/filepath"
	"sync"
)

// Manager finds asset files under its roots.
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager with the given roots.
func NewManager(roots ...string) *Manager {
	m := &Manager{cache: NewCache()}
	for _, r := range roots {
		m.AddRoot(r)
	}
	return m
}

// AddRoot adds a search directory.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(dir string) {
	if dir == "" {
		return
	}
	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()
	m.cache.Clear()
}

// Roots returns the search directories in priority order.
func (m *Manager) Roots() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.roots))
	for i, r := range m.roots {
		out[len(m.roots)-1-i] = r
	}
	return out
}

// Resolve returns the first existing file for path. Absolute paths are
// checked as-is. When nothing matches, path is returned unchanged with ok
// false so the loader can report the original name.
func (m *Manager) Resolve(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if p, ok := m.cache.Get(path); ok {
		return p, true
	}

	if filepath.IsAbs(path) {
		if isFile(path) {
			m.cache.Set(path, path)
			return path, true
		}
		return path, false
	}

	for _, root := range m.Roots() {
		candidate := filepath.Join(root, path)
		if isFile(candidate) {
			m.cache.Set(path, candidate)
			return candidate, true
		}
	}
	return path, false
}

// ResolveAll resolves each path. Missing entries keep their original value.
func (m *Manager) ResolveAll(paths []string) (resolved []string, missing int) {
	resolved = make([]string, len(paths))
	for i, p := range paths {
		var ok bool
		resolved[i], ok = m.Resolve(p)
		if !ok {
			missing++
		}
	}
	return resolved, missing
}

// CacheStats returns resolution cache statistics.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Cache remembers resolved paths.
type Cache struct {
	data map[string]string
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string]string)}
}

// Get retrieves a resolved path.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Set stores a resolved path.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

// Clear drops every entry and resets the stats.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]string)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
