// Package pathcache provides the shared, lock-free route cache of the router.
package pathcache

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/rescheduler/internal/core/domain"
)

// Entry is a cached route: either a concrete path or a proven-unreachable marker.
type Entry struct {
	Path        domain.Path
	Unreachable bool
}

// Found returns an entry holding a concrete path.
func Found(path domain.Path) Entry {
	return Entry{Path: path}
}

// UnreachableEntry returns the marker for a route proven not to exist.
func UnreachableEntry() Entry {
	return Entry{Unreachable: true}
}

// Record pairs a key with its entry for listings.
type Record struct {
	Key   domain.CacheKey
	Entry Entry
}

// Generation holds the entries of one epoch.
type Generation struct {
	entries sync.Map // domain.CacheKey -> Entry
	count   atomic.Int64
}

// TryGet returns the entry stored under key in this generation.
func (g *Generation) TryGet(key domain.CacheKey) (Entry, bool) {
	v, ok := g.entries.Load(key)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true //nolint:forcetypeassert // only Entry values are stored
}

// TryInsertIfAbsent stores entry under key unless the key is already present.
// It reports whether the entry was stored.
func (g *Generation) TryInsertIfAbsent(key domain.CacheKey, entry Entry) bool {
	if _, loaded := g.entries.LoadOrStore(key, entry); loaded {
		return false
	}
	g.count.Add(1)
	return true
}

// Cache is a concurrency-safe map from CacheKey to Entry.
// Inserts never overwrite: the first writer for a key wins.
type Cache struct {
	gen atomic.Pointer[Generation]
}

// New creates an empty cache.
func New() *Cache {
	c := &Cache{}
	c.gen.Store(&Generation{})
	return c
}

// Current returns the live generation. Writes through it after a Clear land
// in the dropped generation and are never observed.
func (c *Cache) Current() *Generation {
	return c.gen.Load()
}

// TryGet returns the entry stored under key.
// The boolean distinguishes a miss from a cached Unreachable entry.
func (c *Cache) TryGet(key domain.CacheKey) (Entry, bool) {
	return c.gen.Load().TryGet(key)
}

// TryInsertIfAbsent stores entry under key in the live generation unless the
// key is already present. It reports whether the entry was stored.
func (c *Cache) TryInsertIfAbsent(key domain.CacheKey, entry Entry) bool {
	return c.gen.Load().TryInsertIfAbsent(key, entry)
}

// Clear drops every entry. Holders of the previous generation finish against it.
func (c *Cache) Clear() {
	c.gen.Store(&Generation{})
}

// Count returns the number of cached entries.
func (c *Cache) Count() int {
	return int(c.gen.Load().count.Load())
}

// TryGetBestAcrossAccessVariants looks up every key a requester of the given
// class may reuse and picks one entry.
//
// Unconstrained requesters consult the generic, class A and class B keys; class
// requesters consult the generic key and their own. The shortest concrete path
// wins and ties go to the key consulted first. A concrete path beats an
// Unreachable marker, and a marker only counts under the generic key or the
// requester's own class.
func (c *Cache) TryGetBestAcrossAccessVariants(start, end domain.Node, access domain.AccessClass) (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for _, variant := range variantsFor(access) {
		e, ok := c.TryGet(domain.Key(start, end, variant))
		if !ok {
			continue
		}
		if e.Unreachable {
			if !found && (variant == domain.Unconstrained || variant == access) {
				best, found = e, true
			}
			continue
		}
		if !found || best.Unreachable || len(e.Path) < len(best.Path) {
			best, found = e, true
		}
	}
	return best, found
}

func variantsFor(access domain.AccessClass) []domain.AccessClass {
	switch access {
	case domain.Unconstrained:
		return []domain.AccessClass{domain.Unconstrained, domain.ClassA, domain.ClassB}
	case domain.ClassA, domain.ClassB:
		return []domain.AccessClass{domain.Unconstrained, access}
	default:
		return nil
	}
}

// Entries returns a snapshot of the cache sorted by start, end and access.
func (c *Cache) Entries() []Record {
	g := c.gen.Load()
	out := make([]Record, 0, g.count.Load())
	g.entries.Range(func(k, v any) bool {
		out = append(out, Record{
			Key:   k.(domain.CacheKey), //nolint:forcetypeassert // only CacheKey keys are stored
			Entry: v.(Entry),           //nolint:forcetypeassert // only Entry values are stored
		})
		return true
	})
	slices.SortFunc(out, func(a, b Record) int {
		return cmp.Or(
			strings.Compare(a.Key.Start.String(), b.Key.Start.String()),
			strings.Compare(a.Key.End.String(), b.Key.End.String()),
			cmp.Compare(a.Key.Access, b.Key.Access),
		)
	})
	return out
}

// Dump writes a human-readable listing of every entry followed by a summary line.
func (c *Cache) Dump(w io.Writer) error {
	records := c.Entries()
	unreachable := 0
	for _, r := range records {
		var err error
		if r.Entry.Unreachable {
			unreachable++
			_, err = fmt.Fprintf(w, "%s: unreachable\n", r.Key)
		} else {
			_, err = fmt.Fprintf(w, "%s: %d nodes (%s)\n", r.Key, len(r.Entry.Path), r.Entry.Path)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d entries, %d unreachable\n", len(records), unreachable)
	return err
}
