// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the admin panel.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: ADMINPANEL_API_BASE_URL, ADMINPANEL_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:4000", Desc: "Base URL of the upstream admin API gateway"},
	{Name: "gateway_timeout", Default: "30s", Desc: "Per-request timeout for gateway calls (e.g., 10s, 1m)"},

	{Name: "admin_username", Default: "admin", Desc: "Console operator login name"},
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the operator password (required)"},

	{Name: "session_key", Default: "", Desc: "Session signing key (must be strong in production; blank generates an ephemeral dev key)"},
	{Name: "session_name", Default: "adminpanel-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_lifetime", Default: "24h", Desc: "How long a signed-in session stays valid"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ADMINPANEL", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL:     strings.TrimRight(appValues.String("api_base_url"), "/"),
		GatewayTimeout: appValues.Duration("gateway_timeout", 30*time.Second),

		AdminUsername:     appValues.String("admin_username"),
		AdminPasswordHash: appValues.String("admin_password_hash"),

		SessionKey:      appValues.String("session_key"),
		SessionName:     appValues.String("session_name"),
		SessionDomain:   appValues.String("session_domain"),
		SessionLifetime: appValues.Duration("session_lifetime", 24*time.Hour),
	}

	// Outside production a missing key gets an ephemeral one, so a bare
	// `go run` works. Sessions do not survive a restart with this key.
	if appCfg.SessionKey == "" && coreCfg.Env != "prod" {
		appCfg.SessionKey = hex.EncodeToString(securecookie.GenerateRandomKey(32))
		logger.Warn("session_key not set; using an ephemeral key for this run")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Catching a bad gateway URL or a missing password hash here beats
// finding out on the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.APIBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("api_base_url must be an absolute http(s) URL, got %q", appCfg.APIBaseURL)
	}

	if appCfg.AdminPasswordHash == "" {
		return fmt.Errorf("admin_password_hash is required (a bcrypt hash; generate one with `htpasswd -BnC 10 ''`)")
	}
	if !strings.HasPrefix(appCfg.AdminPasswordHash, "$2") {
		return fmt.Errorf("admin_password_hash does not look like a bcrypt hash")
	}

	if coreCfg.Env == "prod" {
		if len(appCfg.SessionKey) < 32 {
			return fmt.Errorf("session_key must be set and at least 32 characters in production")
		}
		logger.Info("production config validated")
	}

	return nil
}
