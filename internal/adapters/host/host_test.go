package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tlenv/internal/adapters/host"
)

func TestUnixTraits(t *testing.T) {
	h := host.Unix{}

	traits := h.Traits()
	assert.Empty(t, traits.ExecutableSuffix)
	assert.False(t, traits.FragileFontLinks)
	assert.False(t, traits.CaseInsensitiveEnv)
	assert.Equal(t, ":", h.ListSeparator())
	assert.Equal(t, ":", h.SearchSeparator())
	assert.Empty(t, h.ExtraSeeds())
}

func TestUnixArgv(t *testing.T) {
	argv := host.Unix{}.Argv("tlmgr", "install", "latexmk")
	assert.Equal(t, []string{"tlmgr", "install", "latexmk"}, argv)
}

func TestWindowsTraits(t *testing.T) {
	h := host.Windows{}

	traits := h.Traits()
	assert.Equal(t, ".exe", traits.ExecutableSuffix)
	assert.True(t, traits.FragileFontLinks)
	assert.True(t, traits.CaseInsensitiveEnv)
	assert.Equal(t, ";", h.ListSeparator())
	assert.Equal(t, ";", h.SearchSeparator())
	assert.Equal(t, []string{"tlperl.windows"}, h.ExtraSeeds())
}

func TestWindowsArgv(t *testing.T) {
	tests := []struct {
		name string
		exe  string
		args []string
		want []string
	}{
		{
			name: "plain arguments",
			exe:  "tlmgr",
			args: []string{"install", "latexmk"},
			want: []string{"powershell", "-Command", "& 'tlmgr' 'install' 'latexmk'"},
		},
		{
			name: "embedded quote is doubled",
			exe:  "tlmgr",
			args: []string{"info", "o'clock"},
			want: []string{"powershell", "-Command", "& 'tlmgr' 'info' 'o''clock'"},
		},
		{
			name: "no arguments",
			exe:  "mktexlsr",
			want: []string{"powershell", "-Command", "& 'mktexlsr'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, host.Windows{}.Argv(tt.exe, tt.args...))
		})
	}
}
