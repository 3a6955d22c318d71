package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tlenv/internal/core/domain"
)

func TestResolveDependencyName(t *testing.T) {
	tests := []struct {
		dep  string
		want string
	}{
		{"foo.ARCH", "foo.x86_64-linux"},
		{"foo", "foo"},
		{"foo.ARCH.bar", "foo.ARCH.bar"}, // marker not at the end, queried literally
		{".ARCH", ".ARCH"},
		{"hyphenat", "hyphenat"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ResolveDependencyName(tt.dep, "x86_64-linux"), "dep %q", tt.dep)
	}
}
