// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dspcoder123/admin-panel/internal/app/gateway"
)

// Deps holds backend dependencies for the app.
// The console keeps no database of its own; the upstream admin API
// gateway is its only backend.
type Deps struct {
	Gateway *gateway.Client
}
