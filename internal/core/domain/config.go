package domain

import (
	"encoding/hex"
	"slices"

	"golang.org/x/crypto/sha3"
)

// Config is the declared project configuration: the set of TeX Live packages
// the project depends on. Dependencies are canonical (sorted, duplicate-free)
// so that the digest is stable regardless of declaration order.
type Config struct {
	// Root is the absolute path of the directory containing the
	// configuration file.
	Root string

	Dependencies []string
}

// NewConfig builds a Config with a canonicalized dependency set.
func NewConfig(root string, dependencies []string) Config {
	deps := make([]string, len(dependencies))
	copy(deps, dependencies)
	slices.Sort(deps)
	return Config{
		Root:         root,
		Dependencies: slices.Compact(deps),
	}
}

// Digest returns the hex-encoded SHA3-256 of the canonical encoding of the
// dependency set. Two configs with the same membership always produce the
// same digest; the encoding NUL-terminates each name so that name
// concatenation cannot collide.
func (c Config) Digest() string {
	hasher := sha3.New256()
	for _, dep := range c.Dependencies {
		_, _ = hasher.Write([]byte(dep))
		_, _ = hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
