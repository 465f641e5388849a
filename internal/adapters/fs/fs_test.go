package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/fs"
	"go.trai.ch/cbuild/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func newSourceResolver() *fs.SourceResolver {
	return fs.NewSourceResolver(fs.NewWalker())
}

func TestSourceResolver_LiteralFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	main := writeFile(t, root, "src/main.c", "int main(void) { return 0; }")

	sources, err := newSourceResolver().ResolveSources([]string{"src/main.c"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{main}, sources)
}

func TestSourceResolver_DirectoryWalk(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	a := writeFile(t, root, "src/a.c", "")
	b := writeFile(t, root, "src/sub/b.cpp", "")
	writeFile(t, root, "src/sub/b.h", "")
	writeFile(t, root, "src/notes.txt", "")
	writeFile(t, root, "src/.git/blob.c", "")
	writeFile(t, root, "src/.cbuild/obj/app/stale.c", "")

	sources, err := newSourceResolver().ResolveSources([]string{"src"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, sources,
		"only translation units are collected; VCS and metadata dirs are skipped")
}

func TestSourceResolver_GlobPattern(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	a := writeFile(t, root, "src/a.c", "")
	b := writeFile(t, root, "src/b.c", "")

	sources, err := newSourceResolver().ResolveSources([]string{"src/*.c"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, sources)
}

func TestSourceResolver_DeduplicatesAcrossPatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	a := writeFile(t, root, "src/a.c", "")

	sources, err := newSourceResolver().ResolveSources([]string{"src/a.c", "src/*.c", "src"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, sources)
}

func TestSourceResolver_MissingPattern(t *testing.T) {
	t.Parallel()

	_, err := newSourceResolver().ResolveSources([]string{"src/*.c"}, t.TempDir())
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "int x;")
	same := writeFile(t, dir, "b.c", "int x;")
	other := writeFile(t, dir, "c.c", "int y;")

	h := fs.NewHasher()
	hashA, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	hashB, err := h.ComputeFileHash(same)
	require.NoError(t, err)
	hashC, err := h.ComputeFileHash(other)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB, "hash depends on content, not path")
	assert.NotEqual(t, hashA, hashC)

	_, err = h.ComputeFileHash(filepath.Join(dir, "missing.c"))
	require.Error(t, err)
}

func TestHasher_ComputeInputHash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := writeFile(t, dir, "main.c", `#include "util.h"`)
	dep := writeFile(t, dir, "util.h", "void util(void);")
	command := []string{"cc", "-c", "-O2"}

	h := fs.NewHasher()
	base, err := h.ComputeInputHash(command, source, []string{dep})
	require.NoError(t, err)
	require.Len(t, base, 16)

	again, err := h.ComputeInputHash(command, source, []string{dep})
	require.NoError(t, err)
	assert.Equal(t, base, again)

	// Splitting an argument differently must change the digest.
	joined, err := h.ComputeInputHash([]string{"cc", "-c-O2"}, source, []string{dep})
	require.NoError(t, err)
	assert.NotEqual(t, base, joined)

	// Editing a header dependency must change the digest.
	require.NoError(t, os.WriteFile(dep, []byte("void util(int);"), domain.PrivateFilePerm))
	edited, err := h.ComputeInputHash(command, source, []string{dep})
	require.NoError(t, err)
	assert.NotEqual(t, base, edited)

	// A missing dependency is an error, not a silent skip.
	_, err = h.ComputeInputHash(command, source, []string{filepath.Join(dir, "gone.h")})
	require.Error(t, err)
}

func TestVerifier_ArtifactExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	object := writeFile(t, dir, "a.o", "\x7fELF")

	v := fs.NewVerifier()
	assert.True(t, v.ArtifactExists(object))
	assert.False(t, v.ArtifactExists(filepath.Join(dir, "missing.o")))
	assert.False(t, v.ArtifactExists(dir), "directories are not artifacts")
}
