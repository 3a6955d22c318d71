package overlay_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/engine/overlay"
)

func buildOverlay(t *testing.T) (globalRoot, localRoot string) {
	t.Helper()
	globalRoot = t.TempDir()
	localRoot = t.TempDir()

	writeGlobalFile(t, globalRoot, "bin/x86_64-linux/kpsewhich", "resolver")
	writeGlobalFile(t, globalRoot, "doc/foo/readme.txt", "doc")
	writeGlobalFile(t, globalRoot, "texmf-dist/web2c/updmap.cfg", "Map lm.map\n")

	packages := map[string]domain.Package{
		"foo": {
			Name:     "foo",
			BinFiles: map[string][]string{"x86_64-linux": {"bin/x86_64-linux/kpsewhich"}},
			DocFiles: []string{"doc/foo/readme.txt"},
			RunFiles: []string{"texmf-dist/web2c/updmap.cfg"},
		},
	}
	m := overlay.NewMaterializer(fakeHost{})
	require.NoError(t, m.Materialize(globalRoot, localRoot, "x86_64-linux", packages))
	require.NoError(t, overlay.WriteMarker(localRoot, domain.NewConfig(localRoot, []string{"foo"})))
	return globalRoot, localRoot
}

func TestVerify_CleanOverlay(t *testing.T) {
	globalRoot, localRoot := buildOverlay(t)

	report, err := overlay.NewVerifier().Verify(context.Background(), globalRoot, localRoot)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Equal(t, 1, report.Links)
	// kpsewhich; the marker and the mutable updmap.cfg copy are skipped.
	assert.Equal(t, 1, report.Files)
}

func TestVerify_ModifiedContent(t *testing.T) {
	globalRoot, localRoot := buildOverlay(t)

	// Hardlinked files share content with the global root, so replace the
	// overlay entry with a diverging copy.
	kpse := filepath.Join(localRoot, "bin", "x86_64-linux", "kpsewhich")
	require.NoError(t, os.Remove(kpse))
	require.NoError(t, os.WriteFile(kpse, []byte("tampered"), 0o600))

	report, err := overlay.NewVerifier().Verify(context.Background(), globalRoot, localRoot)
	require.NoError(t, err)
	assert.False(t, report.Clean())
	assert.Equal(t, []string{filepath.Join("bin", "x86_64-linux", "kpsewhich")}, report.Modified)
}

func TestVerify_BrokenLink(t *testing.T) {
	globalRoot, localRoot := buildOverlay(t)
	require.NoError(t, os.Remove(filepath.Join(globalRoot, "doc", "foo", "readme.txt")))

	report, err := overlay.NewVerifier().Verify(context.Background(), globalRoot, localRoot)
	require.NoError(t, err)
	assert.False(t, report.Clean())
	assert.Equal(t, []string{filepath.Join("doc", "foo", "readme.txt")}, report.Broken)
}

func TestVerify_MissingGlobalCounterpart(t *testing.T) {
	globalRoot, localRoot := buildOverlay(t)

	// A stray regular file in the overlay with no global counterpart. The
	// symlink category is covered by the broken-link case; "missing" is
	// about hardlinked/copied files whose origin disappeared.
	stray := filepath.Join(localRoot, "bin", "x86_64-linux", "stray")
	require.NoError(t, os.WriteFile(stray, []byte("stray"), 0o600))

	report, err := overlay.NewVerifier().Verify(context.Background(), globalRoot, localRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("bin", "x86_64-linux", "stray")}, report.Missing)
}
