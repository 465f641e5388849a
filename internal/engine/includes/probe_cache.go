// Package includes implements include-dependency resolution for C/C++
// sources: search path construction, filesystem probing with a
// build-invocation-scoped cache, and the resolver that drives both.
package includes

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// probeShardCount is the number of lock shards. Probe traffic comes from
// every concurrently resolved source file, so a single mutex would serialize
// the whole build on it.
const probeShardCount = 64

// StatFunc is the filesystem check used by the cache. Injectable for tests.
type StatFunc func(path string) (fs.FileInfo, error)

type probeKey struct {
	dir     string
	include string
}

type probeShard struct {
	mu      sync.RWMutex
	entries map[probeKey]bool
}

// ProbeCache memoizes filesystem existence checks keyed by (search
// directory, include string). One instance is shared by all source-file
// resolutions of a single build invocation; a given key touches the
// filesystem at most once per invocation. Entries are never evicted, so the
// cache must be discarded between invocations: a directory's contents may
// change and a stale "not found" would be wrong for the next build.
type ProbeCache struct {
	shards [probeShardCount]probeShard
	stat   StatFunc
}

// NewProbeCache creates an empty cache backed by os.Stat.
func NewProbeCache() *ProbeCache {
	c := &ProbeCache{stat: os.Stat}
	for i := range c.shards {
		c.shards[i].entries = make(map[probeKey]bool)
	}
	return c
}

// WithStat replaces the filesystem check. Used by tests to count or fake
// underlying stats.
func (c *ProbeCache) WithStat(stat StatFunc) *ProbeCache {
	c.stat = stat
	return c
}

// Probe reports whether dir/include exists as a regular file. The first call
// for a key stats the filesystem; every subsequent call returns the cached
// boolean. Directories and dangling symlinks count as not-found, and so does
// any stat error (permission, I/O): Probe never fails.
func (c *ProbeCache) Probe(dir, include string) bool {
	key := probeKey{dir: dir, include: include}
	shard := &c.shards[shardIndex(dir, include)]

	shard.mu.RLock()
	found, ok := shard.entries[key]
	shard.mu.RUnlock()
	if ok {
		return found
	}

	info, err := c.stat(filepath.Join(dir, include))
	found = err == nil && info.Mode().IsRegular()

	// Two workers may race on the same uncached key. Both stat, but the
	// first stored value wins so the cache never flips.
	shard.mu.Lock()
	if prev, ok := shard.entries[key]; ok {
		found = prev
	} else {
		shard.entries[key] = found
	}
	shard.mu.Unlock()

	return found
}

// Size returns the number of cached probe results.
func (c *ProbeCache) Size() int {
	n := 0
	for i := range c.shards {
		c.shards[i].mu.RLock()
		n += len(c.shards[i].entries)
		c.shards[i].mu.RUnlock()
	}
	return n
}

func shardIndex(dir, include string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(dir)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(include)
	return h.Sum64() % probeShardCount
}
