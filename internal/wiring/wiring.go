// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stitch/internal/adapters/cas"
	_ "go.trai.ch/stitch/internal/adapters/config"
	_ "go.trai.ch/stitch/internal/adapters/fs"
	_ "go.trai.ch/stitch/internal/adapters/gruntfile"
	_ "go.trai.ch/stitch/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/stitch/internal/app"
)
