package ports

import "go.trai.ch/tlenv/internal/core/domain"

// Host is the platform capability surface. It is implemented once per target
// platform and selected at startup by a runtime check, keeping the rest of
// the code platform-parametric and testable on any host.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// Traits reports the platform facts the link classifier depends on.
	Traits() domain.HostTraits

	// ListSeparator separates entries of PATH-style environment values.
	ListSeparator() string

	// SearchSeparator separates entries of kpathsea search-path values
	// such as TEXMFCNF. Distinct from ListSeparator on some platforms.
	SearchSeparator() string

	// ExtraSeeds returns platform-specific packages that must join the
	// baseline resolution seeds.
	ExtraSeeds() []string

	// Argv shapes the argument vector for spawning exe with args.
	// Windows routes through powershell so the distribution's batch-file
	// entry points resolve.
	Argv(exe string, args ...string) []string

	// Symlink creates a symbolic link at link pointing to target.
	Symlink(target, link string) error
}
