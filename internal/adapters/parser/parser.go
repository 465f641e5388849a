// Package parser extracts include directives from C/C++ source text.
package parser

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceParser = (*Parser)(nil)

// Parser implements ports.SourceParser with a line-based scan. It only
// understands the simple directive forms
//
//	#include "foo.h"
//	#include <foo.h>
//	#include FOO_H
//
// Conditional compilation (#if/#ifdef), comments and line continuations are
// not processed, so the result over-approximates the directive set. That is
// the safe direction for dependency tracking: an extra directive at worst
// costs a probe, a missed one would leave an artifact stale.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// maxLineSize bounds a single scanned source line (generated headers can
// carry very long lines).
const maxLineSize = 1024 * 1024

// ParseIncludes scans the file at path and returns its include directives in
// source order.
func (p *Parser) ParseIncludes(path string) (*domain.IncludeDirectives, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from resolved target sources
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrFileOpenFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	directives := domain.NewIncludeDirectives()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if inc, ok := parseLine(scanner.Text()); ok {
			directives.Add(inc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceParseFailed, err.Error()), "path", path)
	}

	return directives, nil
}

// parseLine reports whether line is an include directive and returns it.
func parseLine(line string) (domain.Include, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "#") {
		return domain.Include{}, false
	}
	s = strings.TrimSpace(s[1:])

	rest, ok := strings.CutPrefix(s, "include")
	if !ok || rest == "" {
		return domain.Include{}, false
	}
	// Require a boundary so e.g. #include_next is not picked up.
	if c := rest[0]; c != ' ' && c != '\t' && c != '"' && c != '<' {
		return domain.Include{}, false
	}

	arg := strings.TrimSpace(rest)
	switch {
	case strings.HasPrefix(arg, `"`):
		end := strings.IndexByte(arg[1:], '"')
		if end <= 0 {
			return domain.Include{}, false
		}
		return domain.Include{Value: arg[1 : 1+end], Kind: domain.IncludeQuoted}, true

	case strings.HasPrefix(arg, "<"):
		end := strings.IndexByte(arg, '>')
		if end <= 1 {
			return domain.Include{}, false
		}
		return domain.Include{Value: arg[1:end], Kind: domain.IncludeSystem}, true

	default:
		name := leadingIdentifier(arg)
		if name == "" {
			return domain.Include{}, false
		}
		return domain.Include{Value: name, Kind: domain.IncludeMacro}, true
	}
}

// leadingIdentifier returns the C identifier at the start of s, or "".
func leadingIdentifier(s string) string {
	for i := range len(s) {
		c := s[i]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			continue
		}
		if c >= '0' && c <= '9' && i > 0 {
			continue
		}
		return s[:i]
	}
	return s
}
