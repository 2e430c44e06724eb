package ports

import "go.trai.ch/lintsync/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given working directory.
	// A missing config file is not an error.
	Load(cwd string) (*domain.Config, error)
}
