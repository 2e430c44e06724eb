// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lintsync/internal/adapters/config"
	_ "go.trai.ch/lintsync/internal/adapters/fs"
	_ "go.trai.ch/lintsync/internal/adapters/issuestore"
	_ "go.trai.ch/lintsync/internal/adapters/logger"
	_ "go.trai.ch/lintsync/internal/adapters/server"
	_ "go.trai.ch/lintsync/internal/adapters/storage"
	_ "go.trai.ch/lintsync/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/lintsync/internal/app"
	_ "go.trai.ch/lintsync/internal/engine/update"
)
