package host

import (
	"os"

	"go.trai.ch/tlenv/internal/core/domain"
)

// Unix is the capability implementation for Linux, macOS and the BSDs.
type Unix struct{}

// Traits reports the platform facts for the link classifier.
func (Unix) Traits() domain.HostTraits {
	return domain.HostTraits{}
}

// ListSeparator separates PATH entries.
func (Unix) ListSeparator() string { return ":" }

// SearchSeparator separates kpathsea search-path entries.
func (Unix) SearchSeparator() string { return ":" }

// ExtraSeeds returns no extra seeds; the baseline suffices on Unix.
func (Unix) ExtraSeeds() []string { return nil }

// Argv spawns commands directly.
func (Unix) Argv(exe string, args ...string) []string {
	return append([]string{exe}, args...)
}

// Symlink creates a symbolic link.
func (Unix) Symlink(target, link string) error {
	return os.Symlink(target, link)
}
