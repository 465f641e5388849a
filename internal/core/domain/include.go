package domain

// IncludeKind classifies an include directive by how its target is searched.
type IncludeKind uint8

const (
	// IncludeQuoted is a directive of the form `#include "x.h"`. It is
	// searched relative to the including file's directory first, then in the
	// configured include directories.
	IncludeQuoted IncludeKind = iota
	// IncludeSystem is a directive of the form `#include <x.h>`. It is
	// searched only in the configured include directories.
	IncludeSystem
	// IncludeMacro is a directive whose argument is a preprocessor macro,
	// e.g. `#include FOO_H`. Its target cannot be determined without macro
	// expansion, which cbuild does not perform.
	IncludeMacro
)

// String returns a human-readable name for the kind.
func (k IncludeKind) String() string {
	switch k {
	case IncludeQuoted:
		return "quoted"
	case IncludeSystem:
		return "system"
	case IncludeMacro:
		return "macro"
	default:
		return "unknown"
	}
}

// Include is a single include directive extracted from a source file.
// Value holds the literal include string ("stdio.h") for quoted and system
// includes, or the macro name for macro includes.
type Include struct {
	Value string
	Kind  IncludeKind
}

// IncludeDirectives holds the include directives of one source file, split
// by kind. Order within each list is the order of appearance in the source.
type IncludeDirectives struct {
	quoted []Include
	system []Include
	macro  []Include
}

// NewIncludeDirectives creates an empty directive set.
func NewIncludeDirectives() *IncludeDirectives {
	return &IncludeDirectives{}
}

// Add appends a directive to the list matching its kind.
func (d *IncludeDirectives) Add(inc Include) {
	switch inc.Kind {
	case IncludeQuoted:
		d.quoted = append(d.quoted, inc)
	case IncludeSystem:
		d.system = append(d.system, inc)
	case IncludeMacro:
		d.macro = append(d.macro, inc)
	}
}

// QuotedIncludes returns the quoted includes in source order.
func (d *IncludeDirectives) QuotedIncludes() []Include {
	return d.quoted
}

// SystemIncludes returns the system includes in source order.
func (d *IncludeDirectives) SystemIncludes() []Include {
	return d.system
}

// MacroIncludes returns the macro includes in source order.
func (d *IncludeDirectives) MacroIncludes() []Include {
	return d.macro
}

// IsEmpty reports whether the source file contained no include directives.
func (d *IncludeDirectives) IsEmpty() bool {
	return len(d.quoted) == 0 && len(d.system) == 0 && len(d.macro) == 0
}

// All returns every directive in kind order (quoted, system, macro).
// It is used for hashing the directive set deterministically.
func (d *IncludeDirectives) All() []Include {
	all := make([]Include, 0, len(d.quoted)+len(d.system)+len(d.macro))
	all = append(all, d.quoted...)
	all = append(all, d.system...)
	all = append(all, d.macro...)
	return all
}
