package domain

import "time"

// CheckedLocation is a filesystem path probed during include resolution,
// together with whether it existed at the time the snapshot was taken. A
// stored resolution result may only be reused while every checked location's
// existence is unchanged; a header appearing earlier in the search path must
// invalidate the snapshot even though no resolved file changed.
type CheckedLocation struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// SourceDepsInfo is the persisted dependency snapshot for one source file of
// one target: what the source resolved to, everywhere the resolver looked,
// and the hashes needed to decide whether recompilation can be skipped.
type SourceDepsInfo struct {
	// Source is the source file path, relative to the project root.
	Source string `json:"source"`
	// SourceHash is the content hash of the source file at snapshot time.
	SourceHash string `json:"source_hash"`
	// Resolved is the full resolution result, unknown entries included.
	Resolved []ResolvedInclude `json:"resolved,omitzero"`
	// Checked records every probed location with its existence state.
	Checked []CheckedLocation `json:"checked,omitzero"`
	// Unknown is true when the resolution contains an unknown entry; such a
	// source is never confidently cacheable.
	Unknown bool `json:"unknown,omitzero"`
	// InputHash covers the compile command, the source content, and every
	// resolved header's content. Matching hash plus existing output means
	// the compile step can be skipped.
	InputHash string `json:"input_hash"`
	// ComputedAt is the timestamp when the snapshot was taken.
	ComputedAt time.Time `json:"computed_at"`
}

// ResolvedFiles returns the concrete header paths of the snapshot, dropping
// unknown entries, in stored order.
func (i *SourceDepsInfo) ResolvedFiles() []string {
	files := make([]string, 0, len(i.Resolved))
	for _, entry := range i.Resolved {
		if !entry.Unknown() {
			files = append(files, entry.File)
		}
	}
	return files
}
