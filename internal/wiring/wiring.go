// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinset/internal/adapters/config"
	_ "go.trai.ch/pinset/internal/adapters/logger"
	_ "go.trai.ch/pinset/internal/adapters/manifest"
	_ "go.trai.ch/pinset/internal/adapters/sources"
	// Register app nodes.
	_ "go.trai.ch/pinset/internal/app"
)
