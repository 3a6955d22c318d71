// Package overlay builds and manages the project-local overlay of the
// global TeX Live installation.
package overlay

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DirName is the overlay directory created under the project root.
	DirName = ".tlenv"

	dirPerm = 0o750
)

// Materializer mirrors the files of resolved packages from the global root
// into the local overlay, classifying each file into a link strategy.
type Materializer struct {
	host ports.Host

	// hardlink is a seam for tests; defaults to os.Link.
	hardlink func(oldname, newname string) error
}

// NewMaterializer creates a Materializer for the given host.
func NewMaterializer(host ports.Host) *Materializer {
	return &Materializer{
		host:     host,
		hardlink: os.Link,
	}
}

// Materialize reproduces the subset of globalRoot referenced by packages
// under localRoot. Files listed under other platforms' binfile keys are
// ignored. No ordering across files may be relied upon; packages are
// processed in sorted name order only to keep runs reproducible.
func (m *Materializer) Materialize(globalRoot, localRoot, platform string, packages map[string]domain.Package) error {
	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	slices.Sort(names)

	traits := m.host.Traits()
	for _, name := range names {
		pkg := packages[name]
		for _, rel := range pkg.BinFiles[platform] {
			if err := m.place(globalRoot, localRoot, rel, domain.Classify(domain.BinaryFiles, rel, traits)); err != nil {
				return zerr.With(err, "package", name)
			}
		}
		for _, rel := range pkg.DocFiles {
			if err := m.place(globalRoot, localRoot, rel, domain.Classify(domain.DocumentationFiles, rel, traits)); err != nil {
				return zerr.With(err, "package", name)
			}
		}
		for _, rel := range pkg.RunFiles {
			if err := m.place(globalRoot, localRoot, rel, domain.Classify(domain.RuntimeFiles, rel, traits)); err != nil {
				return zerr.With(err, "package", name)
			}
		}
		for _, rel := range pkg.SrcFiles {
			if err := m.place(globalRoot, localRoot, rel, domain.Classify(domain.SourceFiles, rel, traits)); err != nil {
				return zerr.With(err, "package", name)
			}
		}
	}

	return nil
}

func (m *Materializer) place(globalRoot, localRoot, rel string, strategy domain.LinkStrategy) error {
	src := filepath.Join(globalRoot, filepath.FromSlash(rel))
	dst := filepath.Join(localRoot, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create overlay directory"), "path", filepath.Dir(dst))
	}

	switch strategy {
	case domain.Symlink:
		if err := m.host.Symlink(src, dst); err != nil {
			linkErr := zerr.Wrap(err, domain.ErrLinkCreationFailed.Error())
			linkErr = zerr.With(linkErr, "target", src)
			return zerr.With(linkErr, "link", dst)
		}
	case domain.HardlinkOrCopy:
		// Any hardlink failure falls back to a copy, whatever the
		// cause.
		if err := m.hardlink(src, dst); err != nil {
			return copyFile(src, dst)
		}
	case domain.Copy:
		return copyFile(src, dst)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path stems from the trusted global root
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Path lies inside the overlay
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", dst)
	}
	return nil
}
