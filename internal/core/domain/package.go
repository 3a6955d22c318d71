// Package domain contains the core types for tlenv.
package domain

import "strings"

// Package is one resolved TeX Live package record as reported by the
// distribution's metadata query. Immutable once obtained.
type Package struct {
	Name string

	// Depends lists the raw dependency declarations. An entry may end in
	// the literal ".ARCH" token, which stands for the current platform
	// identifier and is substituted during closure resolution.
	Depends []string

	// BinFiles maps a platform identifier to the relative paths of that
	// platform's executables. Only the current platform's key is ever
	// materialized.
	BinFiles map[string][]string

	DocFiles []string
	RunFiles []string
	SrcFiles []string
}

// ArchSuffix is the literal dependency-name marker that stands for the
// current platform identifier.
const ArchSuffix = ".ARCH"

// ResolveDependencyName substitutes a trailing ".ARCH" marker with the given
// platform identifier. Names where the marker is not the final token are
// returned unchanged and queried literally.
func ResolveDependencyName(dep, platform string) string {
	if base, ok := strings.CutSuffix(dep, ArchSuffix); ok && base != "" {
		return base + "." + platform
	}
	return dep
}
