package ports

import (
	"context"

	"go.trai.ch/tlenv/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=distribution.go -destination=mocks/mock_distribution.go -package=mocks

// MetadataQuery answers batched package-metadata lookups against the
// distribution. One call must cover an entire resolution frontier so the
// number of external invocations is bounded by the closure's depth, not its
// size.
type MetadataQuery interface {
	// Info returns one record per known package in names. Fails with
	// domain.ErrMetadataUnavailable on transport or exit failure and
	// domain.ErrMetadataMalformed on an undecodable response.
	Info(ctx context.Context, names []string) ([]domain.Package, error)
}

// Installer installs packages into the shared global installation. Only the
// success signal matters to the core; the installer resolves its own closure
// internally.
type Installer interface {
	Install(ctx context.Context, names []string) error
}

// DistInfo answers one-shot queries about the distribution itself.
type DistInfo interface {
	// Root returns the absolute path of the global installation root.
	Root(ctx context.Context) (string, error)

	// Platform returns the distribution's identifier for the current
	// target platform, e.g. "x86_64-linux".
	Platform(ctx context.Context) (string, error)
}
