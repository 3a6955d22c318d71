package host

import (
	"os"
	"strings"

	"go.trai.ch/tlenv/internal/core/domain"
)

// Windows is the capability implementation for Windows hosts.
type Windows struct{}

// Traits reports the platform facts: executables carry the .exe suffix,
// symlinked .otf containers are mishandled by the font loader so those files
// are hardlinked instead, and environment variable names compare
// case-insensitively.
func (Windows) Traits() domain.HostTraits {
	return domain.HostTraits{
		ExecutableSuffix:   ".exe",
		FragileFontLinks:   true,
		CaseInsensitiveEnv: true,
	}
}

// ListSeparator separates PATH entries.
func (Windows) ListSeparator() string { return ";" }

// SearchSeparator separates kpathsea search-path entries.
func (Windows) SearchSeparator() string { return ";" }

// ExtraSeeds adds the distribution's bundled perl, which every tlmgr
// invocation on Windows depends on.
func (Windows) ExtraSeeds() []string {
	return []string{"tlperl.windows"}
}

// Argv routes through powershell so the distribution's batch-file entry
// points (tlmgr.bat and friends) resolve. Arguments are single-quoted with
// embedded quotes doubled, per powershell quoting rules.
func (Windows) Argv(exe string, args ...string) []string {
	quoted := make([]string, 0, len(args)+1)
	for _, part := range append([]string{exe}, args...) {
		quoted = append(quoted, "'"+strings.ReplaceAll(part, "'", "''")+"'")
	}
	return []string{"powershell", "-Command", "& " + strings.Join(quoted, " ")}
}

// Symlink creates a symbolic link. os.Symlink picks the file or directory
// flavor on Windows by itself.
func (Windows) Symlink(target, link string) error {
	return os.Symlink(target, link)
}
