package ports

import "go.trai.ch/cbuild/internal/core/domain"

// SourceParser defines the interface for extracting include directives from
// a source file.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type SourceParser interface {
	// ParseIncludes scans the file at path and returns its include
	// directives, split by kind, in source order.
	ParseIncludes(path string) (*domain.IncludeDirectives, error)
}
