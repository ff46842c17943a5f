package app

import "go.trai.ch/rescheduler/internal/core/ports"

// Components contains the initialized components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
