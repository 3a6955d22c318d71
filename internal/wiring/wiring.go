// Package wiring registers all graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tlenv/internal/adapters/config"
	_ "go.trai.ch/tlenv/internal/adapters/host"
	_ "go.trai.ch/tlenv/internal/adapters/logger"
	_ "go.trai.ch/tlenv/internal/adapters/shell"
	_ "go.trai.ch/tlenv/internal/adapters/tlmgr"
	// Register app nodes.
	_ "go.trai.ch/tlenv/internal/app"
)
