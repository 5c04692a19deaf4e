package server

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/niriutils/nirictl/internal/util"
	"github.com/niriutils/nirictl/internal/wallpaper"
)

// ListCache holds the probed wallpaper listing between tool calls.
// Probing decodes an image header per file, which is too slow to redo
// on every call against a large wallpaper directory.
type ListCache struct {
	mu        sync.Mutex
	entries   []wallpaper.Entry
	valid     bool
	timestamp time.Time
	ttl       time.Duration

	watcher *fsnotify.Watcher
	log     *util.Logger
}

// NewListCache creates a cache. A ttl of 0 disables caching.
func NewListCache(ttl time.Duration, log *util.Logger) *ListCache {
	return &ListCache{ttl: ttl, log: log}
}

// Entries returns the cached listing if still fresh, otherwise lists
// and probes anew.
func (c *ListCache) Entries(m *wallpaper.Manager) ([]wallpaper.Entry, error) {
	if c.ttl == 0 {
		return probedEntries(m)
	}

	c.mu.Lock()
	if c.valid && time.Since(c.timestamp) < c.ttl {
		entries := c.entries
		c.mu.Unlock()
		return entries, nil
	}
	c.mu.Unlock()

	entries, err := probedEntries(m)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries = entries
	c.valid = true
	c.timestamp = time.Now()
	c.mu.Unlock()

	return entries, nil
}

func probedEntries(m *wallpaper.Manager) ([]wallpaper.Entry, error) {
	entries, err := m.Entries()
	if err != nil {
		return nil, err
	}
	wallpaper.ProbeEntries(entries)
	return entries, nil
}

// Invalidate drops the cached listing.
func (c *ListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.valid = false
}

// Watch invalidates the cache whenever dir changes. The TTL still
// applies for changes the watcher cannot see, such as the state file
// living in another directory.
func (c *ListCache) Watch(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	c.watcher = watcher
	go c.watch()
	return nil
}

func (c *ListCache) watch() {
	for {
		select {
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			c.log.Debugf("wallpaper dir changed (%s), dropping cached listing", event.Name)
			c.Invalidate()
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.log.Warnf("wallpaper watch: %v", err)
		}
	}
}

// Close stops the directory watch.
func (c *ListCache) Close() error {
	if c.watcher == nil {
		return nil
	}
	return c.watcher.Close()
}
