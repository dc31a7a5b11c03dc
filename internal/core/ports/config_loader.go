package ports

import "go.trai.ch/stitch/internal/core/domain"

// ConfigLoader defines the interface for loading configuration declarations.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the declaration file at path and returns the registry it declares.
	Load(path string) (*domain.Registry, error)
}
