// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dspcoder123/admin-panel/internal/app/features/dashboard"
	errorsfeature "github.com/dspcoder123/admin-panel/internal/app/features/errors"
	healthfeature "github.com/dspcoder123/admin-panel/internal/app/features/health"
	loginfeature "github.com/dspcoder123/admin-panel/internal/app/features/login"
	logoutfeature "github.com/dspcoder123/admin-panel/internal/app/features/logout"
	telegramfeature "github.com/dspcoder123/admin-panel/internal/app/features/telegram"
	usersfeature "github.com/dspcoder123/admin-panel/internal/app/features/users"
	visitsfeature "github.com/dspcoder123/admin-panel/internal/app/features/visits"
	widgetsfeature "github.com/dspcoder123/admin-panel/internal/app/features/widgets"
	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	// Feature view packages register their templates via init.
	_ "github.com/dspcoder123/admin-panel/internal/app/features/dashboard/views"
	_ "github.com/dspcoder123/admin-panel/internal/app/features/login/views"
	_ "github.com/dspcoder123/admin-panel/internal/app/features/telegram/views"
	_ "github.com/dspcoder123/admin-panel/internal/app/features/users/views"
	_ "github.com/dspcoder123/admin-panel/internal/app/features/visits/views"
	_ "github.com/dspcoder123/admin-panel/internal/app/features/widgets/views"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, and any
// Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the gateway client bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// The console initializes the template engine, applies session middleware,
// and mounts the login flow, the health endpoint, and the signed-in
// dashboard areas: overview, users, visits, widgets, and telegram.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionLifetime, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Gateway, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginLimiter := ratelimit.NewLoginLimiter()
	loginHandler := loginfeature.NewHandler(sessionMgr, loginLimiter, appCfg.AdminUsername, appCfg.AdminPasswordHash, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Everything else lives behind the login wall.
	r.Route("/dashboard", func(dr chi.Router) {
		dr.Use(sessionMgr.RequireSignedIn)

		dashboardHandler := dashboardfeature.NewHandler(deps.Gateway, sessionMgr, logger)
		dr.Mount("/", dashboardfeature.Routes(dashboardHandler))

		usersHandler := usersfeature.NewHandler(deps.Gateway, sessionMgr, logger)
		dr.Mount("/users", usersfeature.Routes(usersHandler))

		visitsHandler := visitsfeature.NewHandler(deps.Gateway, sessionMgr, logger)
		dr.Mount("/visits", visitsfeature.Routes(visitsHandler))

		widgetsHandler := widgetsfeature.NewHandler(deps.Gateway, sessionMgr, errLog, logger)
		dr.Mount("/widgets", widgetsfeature.Routes(widgetsHandler))

		telegramHandler := telegramfeature.NewHandler(deps.Gateway, sessionMgr, logger)
		dr.Mount("/telegram", telegramfeature.Routes(telegramHandler))
	})

	// The root is only useful once signed in.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard", http.StatusSeeOther)
	})

	return r, nil
}
