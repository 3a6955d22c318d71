package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tlenv/internal/engine/overlay"
)

func TestRewriteSearchPath(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "single matching entry rewritten",
			value: "/a/b:/global/root/bin:/c",
			want:  "/a/b:/local/root/bin:/c",
		},
		{
			name:  "entry equal to target root rewritten",
			value: "/global/root:/usr/bin",
			want:  "/local/root:/usr/bin",
		},
		{
			name:  "string prefix without path boundary passes through",
			value: "/global/rootx/bin:/usr/bin",
			want:  "/global/rootx/bin:/usr/bin",
		},
		{
			name:  "empty entries preserved",
			value: ":/global/root/bin::",
			want:  ":/local/root/bin::",
		},
		{
			name:  "no matching entries",
			value: "/usr/bin:/bin",
			want:  "/usr/bin:/bin",
		},
		{
			name:  "duplicates all rewritten without dedup",
			value: "/global/root/bin:/global/root/bin",
			want:  "/local/root/bin:/local/root/bin",
		},
		{
			name:  "nested path keeps remainder",
			value: "/global/root/bin/x86_64-linux",
			want:  "/local/root/bin/x86_64-linux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlay.RewriteSearchPath(tt.value, "/global/root", "/local/root", ":")
			assert.Equal(t, tt.want, got)
		})
	}
}
