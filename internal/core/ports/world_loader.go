package ports

import "go.trai.ch/rescheduler/internal/core/domain"

// WorldLoader defines the interface for loading the world configuration.
//
//go:generate mockgen -source=world_loader.go -destination=mocks/mock_world_loader.go -package=mocks
type WorldLoader interface {
	// Load reads the world from path. A directory is searched upwards for the world file.
	Load(path string) (*domain.World, error)

	// Discover resolves path to the world file that Load would read.
	Discover(path string) (string, error)
}
