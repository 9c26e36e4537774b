// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dspcoder123/admin-panel/internal/app/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after backends are
// connected, but before the HTTP handler is built. It is the place to load
// shared resources (like templates), warm caches, or perform any app-wide
// setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	return nil
}
