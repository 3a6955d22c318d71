package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tlenv/internal/core/domain"
)

func TestNewConfig_Canonicalization(t *testing.T) {
	cfg := domain.NewConfig("/proj", []string{"beta", "alpha", "beta", "gamma", "alpha"})
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, cfg.Dependencies)
	assert.Equal(t, "/proj", cfg.Root)
}

func TestConfigDigest_OrderInsensitive(t *testing.T) {
	a := domain.NewConfig("/proj", []string{"koma-script", "latexmk", "biber"})
	b := domain.NewConfig("/elsewhere", []string{"biber", "latexmk", "koma-script", "latexmk"})
	assert.Equal(t, a.Digest(), b.Digest())
}

func TestConfigDigest_MembershipSensitive(t *testing.T) {
	a := domain.NewConfig("/proj", []string{"koma-script"})
	b := domain.NewConfig("/proj", []string{"latexmk"})
	assert.NotEqual(t, a.Digest(), b.Digest())
}

func TestConfigDigest_ConcatenationDoesNotCollide(t *testing.T) {
	a := domain.NewConfig("/proj", []string{"ab", "c"})
	b := domain.NewConfig("/proj", []string{"a", "bc"})
	assert.NotEqual(t, a.Digest(), b.Digest())
}

func TestConfigDigest_Shape(t *testing.T) {
	digest := domain.NewConfig("/proj", nil).Digest()
	require.Len(t, digest, 64) // hex-encoded 256 bits
	for _, r := range digest {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}
