// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgdesc/internal/adapters/config"
	_ "go.trai.ch/pkgdesc/internal/adapters/fs"
	_ "go.trai.ch/pkgdesc/internal/adapters/logger"
	_ "go.trai.ch/pkgdesc/internal/adapters/osrelease"
	_ "go.trai.ch/pkgdesc/internal/adapters/shell"
	_ "go.trai.ch/pkgdesc/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/pkgdesc/internal/app"
)
