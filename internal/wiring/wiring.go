// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/crossgrade/crossgrade/internal/adapters/config"
	_ "github.com/crossgrade/crossgrade/internal/adapters/logger"
	// Register app nodes.
	_ "github.com/crossgrade/crossgrade/internal/app"
)
