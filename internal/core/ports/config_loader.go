package ports

import "go.trai.ch/sniff/internal/core/domain"

// ConfigLoader defines the interface for loading the sniff configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from dir looking for sniff.yaml and returns the resolved configuration.
	// Defaults are returned when no file is found.
	Load(dir string) (*domain.Config, error)
}
