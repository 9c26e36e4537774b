package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dspcoder123/admin-panel/internal/app/features/health"
	"github.com/dspcoder123/admin-panel/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_GatewayConnected(t *testing.T) {
	gw := testutil.FakeGateway(t, testutil.JSONRoutes(nil))
	handler := health.NewHandler(gw, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}

	var response struct {
		Status  string `json:"status"`
		Gateway string `json:"gateway"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
	if response.Gateway != "connected" {
		t.Errorf("gateway: got %q, want %q", response.Gateway, "connected")
	}
}

func TestServe_GatewayDown(t *testing.T) {
	handler := health.NewHandler(testutil.DownGateway(t), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var response struct {
		Status  string `json:"status"`
		Gateway string `json:"gateway"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response.Status != "error" {
		t.Errorf("status: got %q, want %q", response.Status, "error")
	}
	if response.Gateway != "unreachable" {
		t.Errorf("gateway: got %q, want %q", response.Gateway, "unreachable")
	}
	if response.Error == "" {
		t.Error("expected error detail in response")
	}
}
