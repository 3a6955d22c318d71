package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tlenv/internal/adapters/config"
	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoad_FindsFileInStartDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "dependencies:\n  - latexmk\n  - lm\n  - latexmk\n")

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	// Duplicates collapse and the order is canonical.
	assert.Equal(t, []string{"latexmk", "lm"}, cfg.Dependencies)
}

func TestLoad_WalksUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "dependencies: [lm]\n")
	nested := filepath.Join(root, "chapters", "03")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	// The project root is where the file lives, not where the search began.
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, []string{"lm"}, cfg.Dependencies)
}

func TestLoad_NotFound(t *testing.T) {
	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))

	_, err := loader.Load(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "dependencies: [unterminated\n")

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_EmptyDependenciesWarns(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "dependencies: []\n")

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any())

	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Dependencies)
}
