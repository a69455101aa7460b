package ports

import "github.com/crossgrade/crossgrade/internal/core/domain"

// ConfigLoader defines the interface for loading runtime settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd and returns validated
	// settings. A missing config file yields defaults, not an error.
	Load(cwd string) (*domain.Settings, error)
}
