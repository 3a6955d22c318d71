package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no tlenv.yaml exists in the
	// starting directory or any of its parents.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrMetadataUnavailable is returned when the distribution's metadata
	// query cannot be executed or exits non-zero.
	ErrMetadataUnavailable = zerr.New("package metadata unavailable")

	// ErrMetadataMalformed is returned when a metadata response cannot be
	// decoded into package records.
	ErrMetadataMalformed = zerr.New("package metadata malformed")

	// ErrInstallFailed is returned when the global package installation
	// exits non-zero.
	ErrInstallFailed = zerr.New("package installation failed")

	// ErrLinkCreationFailed is returned when a symbolic link cannot be
	// created in the overlay.
	ErrLinkCreationFailed = zerr.New("link creation failed")

	// ErrFileWriteFailed is returned when a file copy into the overlay
	// fails.
	ErrFileWriteFailed = zerr.New("file write failed")

	// ErrDirectoryRemovalFailed is returned when a stale overlay cannot
	// be deleted.
	ErrDirectoryRemovalFailed = zerr.New("directory removal failed")

	// ErrCommandFailed is returned when an external command exits
	// non-zero or cannot be spawned.
	ErrCommandFailed = zerr.New("command failed")

	// ErrOverlayDrift is reported by verification when overlay content no
	// longer matches the global root.
	ErrOverlayDrift = zerr.New("overlay content drift")
)
