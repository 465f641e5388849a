package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/core/domain"
)

func TestResolvedSourceIncludes_InsertionOrder(t *testing.T) {
	t.Parallel()

	acc := domain.NewResolvedSourceIncludes()
	acc.RecordResolved("b.h", "/proj/src/b.h")
	acc.RecordResolved("a.h", "/proj/include/a.h")
	acc.RecordResolved("z.h", "/proj/include/z.h")

	files := acc.ResolvedFiles()
	assert.Equal(t, []string{"/proj/src/b.h", "/proj/include/a.h", "/proj/include/z.h"}, files,
		"resolved files must preserve first-seen order, not sort")
}

func TestResolvedSourceIncludes_Deduplication(t *testing.T) {
	t.Parallel()

	acc := domain.NewResolvedSourceIncludes()
	acc.RecordResolved("a.h", "/proj/include/a.h")
	acc.RecordResolved("a.h", "/proj/include/a.h")
	assert.Len(t, acc.ResolvedIncludes(), 1, "same (raw, file) pair inserted twice yields one entry")

	// Same raw include resolving to a different file is a distinct entry.
	acc.RecordResolved("a.h", "/other/a.h")
	assert.Len(t, acc.ResolvedIncludes(), 2)

	acc.RecordChecked("/proj/include/a.h")
	acc.RecordChecked("/proj/include/a.h")
	assert.Equal(t, []string{"/proj/include/a.h"}, acc.CheckedLocations())
}

func TestResolvedSourceIncludes_UnknownEntries(t *testing.T) {
	t.Parallel()

	acc := domain.NewResolvedSourceIncludes()
	acc.RecordResolved("a.h", "/proj/include/a.h")
	acc.RecordResolved("CONFIG_HEADER", "")
	acc.RecordResolved("b.h", "/proj/include/b.h")

	require.Len(t, acc.ResolvedIncludes(), 3)
	assert.True(t, acc.HasUnknown())

	// ResolvedFiles is ResolvedIncludes filtered to known entries, same relative order.
	assert.Equal(t, []string{"/proj/include/a.h", "/proj/include/b.h"}, acc.ResolvedFiles())

	unknown := acc.ResolvedIncludes()[1]
	assert.True(t, unknown.Unknown())
	assert.Equal(t, "CONFIG_HEADER", unknown.Raw)
}

func TestResolvedSourceIncludes_Empty(t *testing.T) {
	t.Parallel()

	acc := domain.NewResolvedSourceIncludes()
	assert.Empty(t, acc.ResolvedIncludes())
	assert.Empty(t, acc.ResolvedFiles())
	assert.Empty(t, acc.CheckedLocations())
	assert.False(t, acc.HasUnknown())
}
