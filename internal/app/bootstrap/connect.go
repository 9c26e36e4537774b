// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the backend dependencies. There is no database here;
// the "connection" is the gateway client for the upstream admin API.
// An unreachable gateway is logged but does not abort startup: the
// console still serves pages and reports the outage per request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	gw := gateway.New(appCfg.APIBaseURL, appCfg.GatewayTimeout, logger)

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := gw.Ping(pingCtx); err != nil {
		logger.Warn("admin API gateway unreachable at startup",
			zap.String("base_url", appCfg.APIBaseURL),
			zap.Error(err))
	} else {
		logger.Info("admin API gateway reachable", zap.String("base_url", appCfg.APIBaseURL))
	}

	return Deps{Gateway: gw}, nil
}

// EnsureSchema is a no-op: the upstream API owns all persistent data.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
