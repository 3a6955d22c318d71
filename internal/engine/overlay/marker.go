package overlay

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// markerName is the file under the overlay root holding the digest of
	// the configuration that produced the current overlay.
	markerName = "version"

	markerPerm = 0o600
)

// ShouldRebuild reports whether the overlay at localRoot is stale for the
// given configuration. Only an existing overlay directory whose marker
// matches the configuration digest short-circuits the rebuild; any other
// condition (missing root, missing or unreadable marker, mismatch) forces a
// full rebuild.
func ShouldRebuild(cfg domain.Config, localRoot string) bool {
	info, err := os.Stat(localRoot)
	if err != nil || !info.IsDir() {
		return true
	}

	data, err := os.ReadFile(filepath.Join(localRoot, markerName)) //nolint:gosec // Overlay path is project-owned
	if err != nil {
		return true
	}

	return strings.TrimSpace(string(data)) != cfg.Digest()
}

// WriteMarker persists the configuration digest under localRoot. Called only
// after a fully successful materialization, so an aborted run leaves a
// mismatched or absent marker and the next run rebuilds from scratch.
func WriteMarker(localRoot string, cfg domain.Config) error {
	path := filepath.Join(localRoot, markerName)
	if err := os.WriteFile(path, []byte(cfg.Digest()), markerPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write overlay marker"), "path", path)
	}
	return nil
}

// Remove deletes the whole overlay subtree. Used when the change-detection
// gate decides a rebuild is needed; there is no incremental repair.
func Remove(localRoot string) error {
	if err := os.RemoveAll(localRoot); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryRemovalFailed.Error()), "path", localRoot)
	}
	return nil
}
