// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request limits. AppConfig is where
// everything specific to this console lives: where the admin API
// gateway is, how operators sign in, and how sessions behave.
type AppConfig struct {
	// Admin API gateway configuration
	APIBaseURL     string        // Base URL of the upstream admin API (e.g., https://api.example.com)
	GatewayTimeout time.Duration // Per-request timeout for gateway calls

	// Operator credentials
	AdminUsername     string // Login name of the console operator
	AdminPasswordHash string // bcrypt hash of the operator's password

	// Session management configuration
	SessionKey      string        // Secret key for signing session cookies (must be strong in production)
	SessionName     string        // Cookie name for sessions (default: adminpanel-session)
	SessionDomain   string        // Cookie domain (blank means current host)
	SessionLifetime time.Duration // How long a signed-in session stays valid
}
