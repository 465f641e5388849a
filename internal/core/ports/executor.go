// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cbuild/internal/core/domain"
)

// Executor defines the interface for running compile and link steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given compile step with the specified environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE"
	// format; they are merged over the process environment.
	//
	// It returns an error if the step fails.
	Execute(ctx context.Context, step *domain.CompileStep, env []string) error
}
