package overlay

import (
	"path/filepath"
	"strings"
)

// RewriteSearchPath redirects a PATH-style value into the overlay: every
// entry that has targetRoot as a path-component prefix gets that prefix
// replaced with replacementRoot. Entry order and count are preserved
// exactly; empty and non-matching entries pass through unmodified.
func RewriteSearchPath(value, targetRoot, replacementRoot, separator string) string {
	entries := strings.Split(value, separator)
	for i, entry := range entries {
		entries[i] = rewriteEntry(entry, targetRoot, replacementRoot)
	}
	return strings.Join(entries, separator)
}

func rewriteEntry(entry, targetRoot, replacementRoot string) string {
	if entry == "" {
		return entry
	}

	rel, err := filepath.Rel(targetRoot, entry)
	if err != nil {
		return entry
	}
	// A prefix match must align on path boundaries: a remainder that
	// climbs out of targetRoot means the entry merely shares a string
	// prefix with it.
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return entry
	}
	if rel == "." {
		return replacementRoot
	}
	return filepath.Join(replacementRoot, rel)
}
