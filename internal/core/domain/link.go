package domain

import "path"

// FileCategory identifies which of a package's file lists a path came from.
type FileCategory int

const (
	// BinaryFiles are platform-specific executables (binfiles).
	BinaryFiles FileCategory = iota
	// DocumentationFiles are documentation (docfiles).
	DocumentationFiles
	// RuntimeFiles are files needed at run time (runfiles).
	RuntimeFiles
	// SourceFiles are package sources (srcfiles).
	SourceFiles
)

// LinkStrategy is the filesystem mechanism used to mirror one file from the
// global root into the overlay.
type LinkStrategy int

const (
	// Symlink creates a symbolic link to the absolute global path.
	Symlink LinkStrategy = iota
	// HardlinkOrCopy attempts a hard link and silently falls back to a
	// full copy on any failure.
	HardlinkOrCopy
	// Copy always performs a full byte-for-byte copy.
	Copy
)

func (s LinkStrategy) String() string {
	switch s {
	case Symlink:
		return "symlink"
	case HardlinkOrCopy:
		return "hardlink"
	case Copy:
		return "copy"
	default:
		return "unknown"
	}
}

// HostTraits carries the platform facts the classifier depends on. Supplied
// by the host capability adapter so the classifier stays pure and testable
// on any platform.
type HostTraits struct {
	// ExecutableSuffix is the native executable extension, ".exe" on
	// Windows and empty elsewhere.
	ExecutableSuffix string

	// FragileFontLinks is set on platforms whose font handling misreads
	// symbolic links to .otf containers (Windows).
	FragileFontLinks bool

	// CaseInsensitiveEnv is set on platforms whose environment variable
	// names compare case-insensitively; Windows reports the search path
	// as "Path".
	CaseInsensitiveEnv bool
}

const (
	// pathResolverBase is the kpathsea lookup executable. It locates the
	// rest of the installation relative to its own absolute path, so a
	// symlink into the global root would defeat the overlay.
	pathResolverBase = "kpsewhich"

	// fontMapConfig is rewritten in place by updmap-sys, so the overlay
	// needs its own copy.
	fontMapConfig = "updmap.cfg"

	fontContainerExt = ".otf"
)

// Classify decides the link strategy for one file. It is a pure function of
// the category, the slash-separated relative path and the host traits; rules
// are evaluated in order and the first match wins.
func Classify(category FileCategory, relPath string, traits HostTraits) LinkStrategy {
	base := path.Base(relPath)

	switch category {
	case BinaryFiles:
		if base == pathResolverBase+traits.ExecutableSuffix {
			return HardlinkOrCopy
		}
	case RuntimeFiles:
		if base == fontMapConfig {
			return Copy
		}
		if traits.FragileFontLinks && path.Ext(relPath) == fontContainerExt {
			return HardlinkOrCopy
		}
	case DocumentationFiles, SourceFiles:
	}

	return Symlink
}
