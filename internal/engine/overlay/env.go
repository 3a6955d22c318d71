package overlay

import (
	"path/filepath"
	"strings"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports"
)

const texmfCnfVar = "TEXMFCNF"

// Environ builds the child-process environment for running a tool inside
// the overlay: PATH entries under the global root are redirected into
// localRoot, and TEXMFCNF points kpathsea at the overlay's configuration
// before its web2c tree. The original casing of a rewritten key is kept.
func Environ(base []string, globalRoot, localRoot string, host ports.Host) []string {
	traits := host.Traits()
	env := make([]string, 0, len(base)+1)
	for _, entry := range base {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			env = append(env, entry)
			continue
		}
		switch {
		case envKeyEquals(key, "PATH", traits):
			env = append(env, key+"="+RewriteSearchPath(value, globalRoot, localRoot, host.ListSeparator()))
		case envKeyEquals(key, texmfCnfVar, traits):
			// Replaced below.
		default:
			env = append(env, entry)
		}
	}

	cnf := localRoot + host.SearchSeparator() + filepath.Join(localRoot, "texmf-dist", "web2c")
	return append(env, texmfCnfVar+"="+cnf)
}

// envKeyEquals compares environment variable names, folding case on
// platforms with case-insensitive environments.
func envKeyEquals(key, name string, traits domain.HostTraits) bool {
	if traits.CaseInsensitiveEnv {
		return strings.EqualFold(key, name)
	}
	return key == name
}
