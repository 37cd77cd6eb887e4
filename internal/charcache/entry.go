package charcache

import (
	"sort"
	"time"

	"holocron/internal/swapi"
)

// Entry is a cached character record and the time it was first fetched.
type Entry struct {
	Character swapi.Character `json:"character"`
	CachedAt  time.Time       `json:"cached_at"`
}

// Cache maps the literal searched name to its entry.
type Cache map[string]Entry

// NamedEntry pairs an entry with its cache key.
type NamedEntry struct {
	Key string
	Entry
}

// Entries returns all entries ordered by capture time (oldest first), which
// is the order they were inserted. Ties fall back to the key.
func (c Cache) Entries() []NamedEntry {
	entries := make([]NamedEntry, 0, len(c))
	for key, entry := range c {
		entries = append(entries, NamedEntry{Key: key, Entry: entry})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CachedAt.Equal(entries[j].CachedAt) {
			return entries[i].CachedAt.Before(entries[j].CachedAt)
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
