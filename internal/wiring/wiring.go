// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/taskforge/taskforge/internal/adapters/config"
	_ "github.com/taskforge/taskforge/internal/adapters/fs"
	_ "github.com/taskforge/taskforge/internal/adapters/gofunc"
	_ "github.com/taskforge/taskforge/internal/adapters/logger"
	_ "github.com/taskforge/taskforge/internal/adapters/memo"
	_ "github.com/taskforge/taskforge/internal/adapters/shell"
	_ "github.com/taskforge/taskforge/internal/adapters/source"
	_ "github.com/taskforge/taskforge/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/taskforge/taskforge/internal/app"
	_ "github.com/taskforge/taskforge/internal/engine/dispatch"
)
