package overlay

// SetHardlink overrides the hardlink seam so tests can force the copy
// fallback.
func (m *Materializer) SetHardlink(fn func(oldname, newname string) error) {
	m.hardlink = fn
}
