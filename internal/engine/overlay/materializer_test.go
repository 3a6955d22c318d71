package overlay_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/engine/overlay"
	"go.trai.ch/zerr"
)

// fakeHost is a unix-shaped host whose traits and symlink behavior tests
// can override.
type fakeHost struct {
	traits  domain.HostTraits
	symlink func(target, link string) error
}

func (h fakeHost) Traits() domain.HostTraits { return h.traits }
func (fakeHost) ListSeparator() string       { return ":" }
func (fakeHost) SearchSeparator() string     { return ":" }
func (fakeHost) ExtraSeeds() []string        { return nil }
func (fakeHost) Argv(exe string, args ...string) []string {
	return append([]string{exe}, args...)
}
func (h fakeHost) Symlink(target, link string) error {
	if h.symlink != nil {
		return h.symlink(target, link)
	}
	return os.Symlink(target, link)
}

func writeGlobalFile(t *testing.T, globalRoot, rel, content string) {
	t.Helper()
	path := filepath.Join(globalRoot, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestMaterialize_MirrorsCategories(t *testing.T) {
	globalRoot := t.TempDir()
	localRoot := t.TempDir()

	writeGlobalFile(t, globalRoot, "bin/x86_64-linux/pdflatex", "binary")
	writeGlobalFile(t, globalRoot, "bin/x86_64-linux/kpsewhich", "resolver")
	writeGlobalFile(t, globalRoot, "bin/windows/pdflatex.exe", "other platform")
	writeGlobalFile(t, globalRoot, "texmf-dist/web2c/updmap.cfg", "Map lm.map\n")
	writeGlobalFile(t, globalRoot, "texmf-dist/tex/latex/foo/foo.sty", "sty")
	writeGlobalFile(t, globalRoot, "doc/foo/readme.txt", "doc")
	writeGlobalFile(t, globalRoot, "source/foo/foo.dtx", "src")

	packages := map[string]domain.Package{
		"foo": {
			Name: "foo",
			BinFiles: map[string][]string{
				"x86_64-linux": {"bin/x86_64-linux/pdflatex", "bin/x86_64-linux/kpsewhich"},
				"windows":      {"bin/windows/pdflatex.exe"},
			},
			RunFiles: []string{"texmf-dist/web2c/updmap.cfg", "texmf-dist/tex/latex/foo/foo.sty"},
			DocFiles: []string{"doc/foo/readme.txt"},
			SrcFiles: []string{"source/foo/foo.dtx"},
		},
	}

	m := overlay.NewMaterializer(fakeHost{})
	require.NoError(t, m.Materialize(globalRoot, localRoot, "x86_64-linux", packages))

	// Plain binary, runtime, doc and source files are symlinks to the
	// absolute global path.
	for _, rel := range []string{
		"bin/x86_64-linux/pdflatex",
		"texmf-dist/tex/latex/foo/foo.sty",
		"doc/foo/readme.txt",
		"source/foo/foo.dtx",
	} {
		local := filepath.Join(localRoot, filepath.FromSlash(rel))
		info, err := os.Lstat(local)
		require.NoError(t, err, rel)
		require.NotZero(t, info.Mode()&os.ModeSymlink, "%s should be a symlink", rel)

		target, err := os.Readlink(local)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(globalRoot, filepath.FromSlash(rel)), target)
	}

	// kpsewhich is a hard link (or copy), never a symlink.
	kpse, err := os.Lstat(filepath.Join(localRoot, "bin", "x86_64-linux", "kpsewhich"))
	require.NoError(t, err)
	assert.Zero(t, kpse.Mode()&os.ModeSymlink)

	// updmap.cfg is a private copy.
	cfgInfo, err := os.Lstat(filepath.Join(localRoot, "texmf-dist", "web2c", "updmap.cfg"))
	require.NoError(t, err)
	assert.Zero(t, cfgInfo.Mode()&os.ModeSymlink)
	content, err := os.ReadFile(filepath.Join(localRoot, "texmf-dist", "web2c", "updmap.cfg"))
	require.NoError(t, err)
	assert.Equal(t, "Map lm.map\n", string(content))

	// Other platforms' binaries are ignored entirely.
	_, err = os.Lstat(filepath.Join(localRoot, "bin", "windows", "pdflatex.exe"))
	assert.True(t, os.IsNotExist(err))
}

func TestMaterialize_HardlinkFallsBackToCopy(t *testing.T) {
	globalRoot := t.TempDir()
	localRoot := t.TempDir()
	writeGlobalFile(t, globalRoot, "bin/x86_64-linux/kpsewhich", "resolver")

	packages := map[string]domain.Package{
		"kpathsea.x86_64-linux": {
			Name:     "kpathsea.x86_64-linux",
			BinFiles: map[string][]string{"x86_64-linux": {"bin/x86_64-linux/kpsewhich"}},
		},
	}

	m := overlay.NewMaterializer(fakeHost{})
	m.SetHardlink(func(_, _ string) error {
		return zerr.New("cross-device link")
	})
	require.NoError(t, m.Materialize(globalRoot, localRoot, "x86_64-linux", packages))

	content, err := os.ReadFile(filepath.Join(localRoot, "bin", "x86_64-linux", "kpsewhich"))
	require.NoError(t, err)
	assert.Equal(t, "resolver", string(content))
}

func TestMaterialize_CopyFailureIsFatal(t *testing.T) {
	globalRoot := t.TempDir()
	localRoot := t.TempDir()

	// The source file is missing, so the forced copy fallback must fail.
	packages := map[string]domain.Package{
		"kpathsea.x86_64-linux": {
			Name:     "kpathsea.x86_64-linux",
			BinFiles: map[string][]string{"x86_64-linux": {"bin/x86_64-linux/kpsewhich"}},
		},
	}

	m := overlay.NewMaterializer(fakeHost{})
	m.SetHardlink(func(_, _ string) error {
		return zerr.New("nope")
	})
	err := m.Materialize(globalRoot, localRoot, "x86_64-linux", packages)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileWriteFailed.Error())
}

func TestMaterialize_SymlinkFailureIsFatal(t *testing.T) {
	globalRoot := t.TempDir()
	localRoot := t.TempDir()
	writeGlobalFile(t, globalRoot, "doc/foo/readme.txt", "doc")

	packages := map[string]domain.Package{
		"foo": {Name: "foo", DocFiles: []string{"doc/foo/readme.txt"}},
	}

	host := fakeHost{symlink: func(_, _ string) error {
		return zerr.New("operation not permitted")
	}}
	err := overlay.NewMaterializer(host).
		Materialize(globalRoot, localRoot, "x86_64-linux", packages)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLinkCreationFailed.Error())
}

func TestMaterialize_SharedParentDirectories(t *testing.T) {
	globalRoot := t.TempDir()
	localRoot := t.TempDir()
	writeGlobalFile(t, globalRoot, "doc/foo/a.txt", "a")
	writeGlobalFile(t, globalRoot, "doc/foo/b.txt", "b")

	packages := map[string]domain.Package{
		"foo": {Name: "foo", DocFiles: []string{"doc/foo/a.txt", "doc/foo/b.txt"}},
	}

	m := overlay.NewMaterializer(fakeHost{})
	require.NoError(t, m.Materialize(globalRoot, localRoot, "x86_64-linux", packages))

	for _, rel := range []string{"doc/foo/a.txt", "doc/foo/b.txt"} {
		_, err := os.Lstat(filepath.Join(localRoot, filepath.FromSlash(rel)))
		assert.NoError(t, err)
	}
}
