package overlay

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Report summarizes an overlay verification run.
type Report struct {
	// Links and Files count the checked symlinks and regular files.
	Links int
	Files int

	// Broken lists overlay paths whose symlink target no longer resolves.
	Broken []string

	// Missing lists overlay files with no counterpart under the global
	// root.
	Missing []string

	// Modified lists overlay files whose content diverged from the
	// global root.
	Modified []string
}

// Clean reports whether the overlay matches the global root.
func (r *Report) Clean() bool {
	return len(r.Broken) == 0 && len(r.Missing) == 0 && len(r.Modified) == 0
}

// Verifier checks an existing overlay against the global root it was built
// from: symlink targets must resolve, and hardlinked or copied files must
// still match the global content byte for byte (compared by content hash).
type Verifier struct{}

// NewVerifier creates a Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// localOnly are overlay root files with no global counterpart. The font map
// copy, which updmap-sys rewrites in place, is skipped by base name during
// the walk.
var localOnly = map[string]bool{
	markerName: true,
}

// Verify walks localRoot and compares it against globalRoot. File hashing
// fans out across CPUs; the report's slices are sorted for stable output.
func (v *Verifier) Verify(ctx context.Context, globalRoot, localRoot string) (*Report, error) {
	report := &Report{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	err := filepath.WalkDir(localRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk overlay"), "path", path)
		}
		if entry.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, err := filepath.Rel(localRoot, path)
		if err != nil {
			return err
		}
		if localOnly[rel] || filepath.Base(rel) == "updmap.cfg" {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			mu.Lock()
			report.Links++
			if _, statErr := os.Stat(path); statErr != nil {
				report.Broken = append(report.Broken, rel)
			}
			mu.Unlock()
			return nil
		}

		mu.Lock()
		report.Files++
		mu.Unlock()

		g.Go(func() error {
			global := filepath.Join(globalRoot, rel)
			globalSum, err := hashFile(global)
			if err != nil {
				if os.IsNotExist(err) {
					mu.Lock()
					report.Missing = append(report.Missing, rel)
					mu.Unlock()
					return nil
				}
				return zerr.With(zerr.Wrap(err, "failed to hash global file"), "path", global)
			}

			localSum, err := hashFile(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to hash overlay file"), "path", path)
			}

			if localSum != globalSum {
				mu.Lock()
				report.Modified = append(report.Modified, rel)
				mu.Unlock()
			}
			return nil
		})
		return nil
	})
	if err != nil {
		_ = g.Wait()
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(report.Broken)
	slices.Sort(report.Missing)
	slices.Sort(report.Modified)
	return report, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Paths stem from the roots being compared
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}
