package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"go.uber.org/zap"
)

// FakeGateway runs an httptest server acting as the upstream admin API and
// returns a gateway client pointed at it. The server is closed with the test.
func FakeGateway(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.New(srv.URL, 5*time.Second, zap.NewNop())
}

// JSONRoutes builds a handler that serves fixed JSON bodies by path. Paths
// not in the map get a 404 with an empty JSON object.
func JSONRoutes(routes map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if body, ok := routes[r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{}`))
	})
}

// DownGateway returns a gateway client whose upstream refuses connections,
// for exercising transport-failure paths.
func DownGateway(t *testing.T) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return gateway.New(srv.URL, time.Second, zap.NewNop())
}
