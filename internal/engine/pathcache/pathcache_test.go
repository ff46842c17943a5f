package pathcache_test

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/engine/pathcache"
)

func path(names ...string) domain.Path {
	return domain.Path(domain.NewNodes(names))
}

func key(start, end string, access domain.AccessClass) domain.CacheKey {
	return domain.Key(domain.NewNode(start), domain.NewNode(end), access)
}

func TestCache_MissVersusUnreachable(t *testing.T) {
	c := pathcache.New()

	_, ok := c.TryGet(key("Town", "Mine", domain.Unconstrained))
	assert.False(t, ok, "expected a miss on an empty cache")

	require.True(t, c.TryInsertIfAbsent(key("Town", "Mine", domain.Unconstrained), pathcache.UnreachableEntry()))

	e, ok := c.TryGet(key("Town", "Mine", domain.Unconstrained))
	require.True(t, ok, "expected the unreachable marker to be found")
	assert.True(t, e.Unreachable)
	assert.Nil(t, e.Path)
}

func TestCache_FirstWriterWins(t *testing.T) {
	c := pathcache.New()
	k := key("Town", "Mine", domain.Unconstrained)

	assert.True(t, c.TryInsertIfAbsent(k, pathcache.Found(path("Town", "Forest", "Mine"))))
	assert.False(t, c.TryInsertIfAbsent(k, pathcache.Found(path("Town", "Beach", "Mine"))))
	assert.False(t, c.TryInsertIfAbsent(k, pathcache.UnreachableEntry()))

	e, ok := c.TryGet(k)
	require.True(t, ok)
	assert.Equal(t, "Town->Forest->Mine", e.Path.String())
	assert.Equal(t, 1, c.Count())
}

func TestCache_ConcurrentInserts(t *testing.T) {
	c := pathcache.New()

	const workers = 16
	const keys = 200

	var wg sync.WaitGroup
	winners := make([]int, workers)
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range keys {
				k := key("Town", fmt.Sprintf("N%d", i), domain.Unconstrained)
				if c.TryInsertIfAbsent(k, pathcache.Found(path("Town", fmt.Sprintf("N%d", i)))) {
					winners[w]++
				}
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, n := range winners {
		total += n
	}
	assert.Equal(t, keys, total, "every key must be won exactly once")
	assert.Equal(t, keys, c.Count())
}

func TestCache_Clear(t *testing.T) {
	c := pathcache.New()
	c.TryInsertIfAbsent(key("Town", "Mine", domain.Unconstrained), pathcache.Found(path("Town", "Mine")))
	require.Equal(t, 1, c.Count())

	c.Clear()

	assert.Equal(t, 0, c.Count())
	_, ok := c.TryGet(key("Town", "Mine", domain.Unconstrained))
	assert.False(t, ok)
	assert.Empty(t, c.Entries())
}

func TestCache_StaleGenerationWritesAreDropped(t *testing.T) {
	c := pathcache.New()
	gen := c.Current()

	c.Clear()
	require.True(t, gen.TryInsertIfAbsent(key("Town", "Mine", domain.Unconstrained), pathcache.Found(path("Town", "Mine"))))

	assert.Equal(t, 0, c.Count())
	_, ok := c.TryGet(key("Town", "Mine", domain.Unconstrained))
	assert.False(t, ok, "an insert into a dropped generation must not surface")

	e, ok := gen.TryGet(key("Town", "Mine", domain.Unconstrained))
	require.True(t, ok)
	assert.Equal(t, "Town->Mine", e.Path.String())
}

func TestCache_TryGetBestAcrossAccessVariants(t *testing.T) {
	short := path("Town", "Mine")
	long := path("Town", "Forest", "Mine")

	tests := []struct {
		name      string
		seed      map[domain.AccessClass]pathcache.Entry
		requester domain.AccessClass
		wantFound bool
		wantUnr   bool
		wantPath  string
	}{
		{
			name:      "miss",
			requester: domain.Unconstrained,
		},
		{
			name:      "generic only",
			seed:      map[domain.AccessClass]pathcache.Entry{domain.Unconstrained: pathcache.Found(long)},
			requester: domain.ClassA,
			wantFound: true,
			wantPath:  long.String(),
		},
		{
			name: "shorter class entry wins",
			seed: map[domain.AccessClass]pathcache.Entry{
				domain.Unconstrained: pathcache.Found(long),
				domain.ClassA:        pathcache.Found(short),
			},
			requester: domain.ClassA,
			wantFound: true,
			wantPath:  short.String(),
		},
		{
			name: "tie prefers generic",
			seed: map[domain.AccessClass]pathcache.Entry{
				domain.Unconstrained: pathcache.Found(path("Town", "Beach", "Mine")),
				domain.ClassB:        pathcache.Found(long),
			},
			requester: domain.ClassB,
			wantFound: true,
			wantPath:  "Town->Beach->Mine",
		},
		{
			name:      "other class is ignored",
			seed:      map[domain.AccessClass]pathcache.Entry{domain.ClassB: pathcache.Found(short)},
			requester: domain.ClassA,
		},
		{
			name:      "unconstrained requester reuses class entry",
			seed:      map[domain.AccessClass]pathcache.Entry{domain.ClassB: pathcache.Found(short)},
			requester: domain.Unconstrained,
			wantFound: true,
			wantPath:  short.String(),
		},
		{
			name:      "own unreachable is definitive",
			seed:      map[domain.AccessClass]pathcache.Entry{domain.ClassA: pathcache.UnreachableEntry()},
			requester: domain.ClassA,
			wantFound: true,
			wantUnr:   true,
		},
		{
			name:      "class unreachable does not bind unconstrained requester",
			seed:      map[domain.AccessClass]pathcache.Entry{domain.ClassA: pathcache.UnreachableEntry()},
			requester: domain.Unconstrained,
		},
		{
			name: "path beats unreachable",
			seed: map[domain.AccessClass]pathcache.Entry{
				domain.Unconstrained: pathcache.UnreachableEntry(),
				domain.ClassA:        pathcache.Found(long),
			},
			requester: domain.ClassA,
			wantFound: true,
			wantPath:  long.String(),
		},
		{
			name:      "infeasible requester never hits",
			seed:      map[domain.AccessClass]pathcache.Entry{domain.Unconstrained: pathcache.Found(short)},
			requester: domain.Infeasible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := pathcache.New()
			for access, e := range tt.seed {
				c.TryInsertIfAbsent(key("Town", "Mine", access), e)
			}

			e, ok := c.TryGetBestAcrossAccessVariants(domain.NewNode("Town"), domain.NewNode("Mine"), tt.requester)
			require.Equal(t, tt.wantFound, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantUnr, e.Unreachable)
			assert.Equal(t, tt.wantPath, e.Path.String())
		})
	}
}

func TestCache_Dump(t *testing.T) {
	c := pathcache.New()
	c.TryInsertIfAbsent(key("Town", "Mine", domain.Unconstrained), pathcache.Found(path("Town", "Forest", "Mine")))
	c.TryInsertIfAbsent(key("Town", "Forest", domain.Unconstrained), pathcache.Found(path("Town", "Forest")))
	c.TryInsertIfAbsent(key("Beach", "Mine", domain.ClassA), pathcache.Found(path("Beach", "Locker", "Mine")))
	c.TryInsertIfAbsent(key("Town", "Island", domain.Unconstrained), pathcache.UnreachableEntry())
	c.TryInsertIfAbsent(key("Town", "Mine", domain.ClassB), pathcache.Found(path("Town", "Mine")))

	var buf bytes.Buffer
	require.NoError(t, c.Dump(&buf))

	g := goldie.New(t)
	g.Assert(t, "dump", buf.Bytes())
}
