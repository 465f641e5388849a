package includes_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/engine/includes"
	"go.trai.ch/zerr"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("// "+name+"\n"), domain.PrivateFilePerm))
	return path
}

// countingStat wraps os.Stat and counts underlying filesystem checks.
func countingStat(counter *atomic.Int64) includes.StatFunc {
	return func(path string) (fs.FileInfo, error) {
		counter.Add(1)
		return os.Stat(path)
	}
}

func TestProbeCache_RegularFilesOnly(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "header.h")
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "subdir.h"), domain.DirPerm))

	cache := includes.NewProbeCache()

	assert.True(t, cache.Probe(tmpDir, "header.h"))
	assert.False(t, cache.Probe(tmpDir, "subdir.h"), "a directory is not a header")
	assert.False(t, cache.Probe(tmpDir, "missing.h"))
	assert.Equal(t, 3, cache.Size())
}

func TestProbeCache_StatsOncePerKey(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.h")

	var stats atomic.Int64
	cache := includes.NewProbeCache().WithStat(countingStat(&stats))

	for range 10 {
		assert.True(t, cache.Probe(tmpDir, "a.h"))
		assert.False(t, cache.Probe(tmpDir, "b.h"))
	}

	assert.Equal(t, int64(2), stats.Load(), "one stat per (dir, include) key")
}

func TestProbeCache_StatErrorIsNotFound(t *testing.T) {
	t.Parallel()

	var stats atomic.Int64
	cache := includes.NewProbeCache().WithStat(func(string) (fs.FileInfo, error) {
		stats.Add(1)
		return nil, zerr.New("permission denied")
	})

	assert.False(t, cache.Probe("/restricted", "secret.h"))
	assert.False(t, cache.Probe("/restricted", "secret.h"), "the failure is cached like any miss")
	assert.Equal(t, int64(1), stats.Load())
}

func TestProbeCache_DistinctDirsAreDistinctKeys(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, dirA, "shared.h")

	cache := includes.NewProbeCache()

	assert.True(t, cache.Probe(dirA, "shared.h"))
	assert.False(t, cache.Probe(dirB, "shared.h"))
}

func TestProbeCache_ConcurrentProbesConverge(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "hot.h")

	var stats atomic.Int64
	cache := includes.NewProbeCache().WithStat(countingStat(&stats))

	const workers = 32
	results := make([]bool, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = cache.Probe(tmpDir, "hot.h")
		}()
	}
	wg.Wait()

	for i, found := range results {
		assert.True(t, found, "worker %d", i)
	}
	// The race may stat more than once, but the cache holds one entry and
	// later probes are free.
	assert.Equal(t, 1, cache.Size())
	before := stats.Load()
	cache.Probe(tmpDir, "hot.h")
	assert.Equal(t, before, stats.Load())
}
