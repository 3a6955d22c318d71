// Package resolver computes the transitive dependency closure of a set of
// package names against the distribution's metadata.
package resolver

import (
	"context"
	"slices"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// baselineSeeds are always resolved regardless of the declared
// configuration: the distribution's own infrastructure and the kpathsea
// lookup machinery every tool depends on.
var baselineSeeds = []string{"texlive.infra", "kpathsea"}

// Seeds builds the initial resolution frontier: the fixed baseline, the
// host's platform-specific extras and every declared dependency, sorted and
// deduplicated.
func Seeds(declared, extra []string) []string {
	seeds := make([]string, 0, len(baselineSeeds)+len(extra)+len(declared))
	seeds = append(seeds, baselineSeeds...)
	seeds = append(seeds, extra...)
	seeds = append(seeds, declared...)
	slices.Sort(seeds)
	return slices.Compact(seeds)
}

// Resolver walks package metadata to the full transitive closure.
type Resolver struct {
	query ports.MetadataQuery
}

// New creates a Resolver over the given metadata query.
func New(query ports.MetadataQuery) *Resolver {
	return &Resolver{query: query}
}

// Closure resolves every package reachable from seeds. Each resolution round
// issues exactly one batched query covering the entire current frontier, so
// the number of external invocations is bounded by the closure's depth. A
// name enters a frontier at most once over the whole run (guarded by
// membership in the result), which terminates cycles: the cycle-closing edge
// points at a name that is already resolved.
func (r *Resolver) Closure(ctx context.Context, seeds []string, platform string) (map[string]domain.Package, error) {
	frontier := make(map[string]struct{}, len(seeds))
	for _, seed := range seeds {
		frontier[seed] = struct{}{}
	}

	resolved := make(map[string]domain.Package)
	for len(frontier) > 0 {
		names := make([]string, 0, len(frontier))
		for name := range frontier {
			names = append(names, name)
		}
		slices.Sort(names)

		records, err := r.query.Info(ctx, names)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve dependency closure")
		}
		clear(frontier)

		for _, record := range records {
			if _, ok := resolved[record.Name]; !ok {
				resolved[record.Name] = record
			}
			// A record returned in this batch may have been re-added to
			// the frontier by an earlier record's dependency edge.
			delete(frontier, record.Name)
			for _, dep := range record.Depends {
				name := domain.ResolveDependencyName(dep, platform)
				if _, ok := resolved[name]; !ok {
					frontier[name] = struct{}{}
				}
			}
		}
	}

	return resolved, nil
}
