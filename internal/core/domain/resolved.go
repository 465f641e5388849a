package domain

// ResolvedInclude is the outcome of resolving one include directive.
// File is the canonical path of the header the directive refers to, or empty
// when the target is unknown (currently only macro includes produce unknown
// entries). Identity is the (Raw, File) pair.
type ResolvedInclude struct {
	// Raw is the literal include string as written in the source.
	Raw string `json:"raw"`
	// File is the canonical path of the resolved header, or "" if unknown.
	File string `json:"file,omitzero"`
}

// Unknown reports whether the directive could not be resolved to a concrete
// file. Consumers must treat a source file with unknown entries as not
// confidently cacheable.
func (r ResolvedInclude) Unknown() bool {
	return r.File == ""
}

// ResolvedSourceIncludes accumulates the resolution result for one source
// file: the resolved dependencies and every filesystem location probed on
// the way. Both collections preserve first-seen insertion order and
// deduplicate by value, so dependency lists are deterministic across runs.
//
// The accumulator is built in a single pass by the include resolver and is
// not safe for concurrent mutation; each source file gets its own instance.
type ResolvedSourceIncludes struct {
	resolved    []ResolvedInclude
	resolvedIdx map[ResolvedInclude]struct{}
	checked     []string
	checkedIdx  map[string]struct{}
}

// NewResolvedSourceIncludes creates an empty accumulator.
func NewResolvedSourceIncludes() *ResolvedSourceIncludes {
	return &ResolvedSourceIncludes{
		resolvedIdx: make(map[ResolvedInclude]struct{}),
		checkedIdx:  make(map[string]struct{}),
	}
}

// RecordChecked records a candidate path that was probed during resolution,
// regardless of outcome. Failed probes matter: a later build must notice
// when a previously absent file appears at one of these locations.
func (r *ResolvedSourceIncludes) RecordChecked(path string) {
	if _, seen := r.checkedIdx[path]; seen {
		return
	}
	r.checkedIdx[path] = struct{}{}
	r.checked = append(r.checked, path)
}

// RecordResolved records the resolution of one include directive. An empty
// file marks an unknown entry. Duplicate (raw, file) pairs collapse into the
// first-seen entry.
func (r *ResolvedSourceIncludes) RecordResolved(rawInclude, file string) {
	entry := ResolvedInclude{Raw: rawInclude, File: file}
	if _, seen := r.resolvedIdx[entry]; seen {
		return
	}
	r.resolvedIdx[entry] = struct{}{}
	r.resolved = append(r.resolved, entry)
}

// ResolvedIncludes returns every resolved entry, unknown ones included, in
// insertion order.
func (r *ResolvedSourceIncludes) ResolvedIncludes() []ResolvedInclude {
	return r.resolved
}

// ResolvedFiles returns the concrete dependency edges: the files of all
// known entries, in the same relative order as ResolvedIncludes.
func (r *ResolvedSourceIncludes) ResolvedFiles() []string {
	files := make([]string, 0, len(r.resolved))
	for _, entry := range r.resolved {
		if !entry.Unknown() {
			files = append(files, entry.File)
		}
	}
	return files
}

// CheckedLocations returns every probed candidate path in insertion order.
// Callers use it for staleness detection: if any of these paths flips
// existence state between builds, the whole result must be recomputed.
func (r *ResolvedSourceIncludes) CheckedLocations() []string {
	return r.checked
}

// HasUnknown reports whether any entry is unknown.
func (r *ResolvedSourceIncludes) HasUnknown() bool {
	for _, entry := range r.resolved {
		if entry.Unknown() {
			return true
		}
	}
	return false
}
