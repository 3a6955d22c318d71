// Package host implements the platform capability adapter. Platform
// differences are isolated behind ports.Host and selected by a runtime
// check, so no other package branches on the operating system.
package host

import (
	"runtime"

	"go.trai.ch/tlenv/internal/core/ports"
)

// Detect returns the capability implementation for the current operating
// system.
func Detect() ports.Host {
	if runtime.GOOS == "windows" {
		return Windows{}
	}
	return Unix{}
}
