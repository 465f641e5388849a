// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cbuild/internal/adapters/config"
	_ "go.trai.ch/cbuild/internal/adapters/fs"
	_ "go.trai.ch/cbuild/internal/adapters/logger"
	_ "go.trai.ch/cbuild/internal/adapters/parser"
	_ "go.trai.ch/cbuild/internal/adapters/shell"
	_ "go.trai.ch/cbuild/internal/adapters/store"
	_ "go.trai.ch/cbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/cbuild/internal/app"
	_ "go.trai.ch/cbuild/internal/engine/scheduler"
)
