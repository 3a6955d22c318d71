// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/tlenv/internal/core/domain"

// ConfigLoader locates and parses the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches startDir and its parents for the configuration file
	// and returns the parsed, canonicalized config. The returned config's
	// Root is the directory the file was found in.
	Load(startDir string) (domain.Config, error)
}
