// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rescheduler/internal/adapters/logger"
	_ "go.trai.ch/rescheduler/internal/adapters/telemetry"
	_ "go.trai.ch/rescheduler/internal/adapters/watcher"
	_ "go.trai.ch/rescheduler/internal/adapters/world"
	// Register app and engine nodes.
	_ "go.trai.ch/rescheduler/internal/app"
	_ "go.trai.ch/rescheduler/internal/engine/router"
)
