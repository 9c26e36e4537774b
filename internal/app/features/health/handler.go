package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the gateway client and logger.
func NewHandler(gw *gateway.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Gateway: gw,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Gateway string `json:"gateway"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "gateway":"connected" }
//
// On gateway failure: 503 and
//
//	{ "status":"error", "gateway":"unreachable", "message":"Gateway unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Gateway: "connected",
	}

	if err := h.Gateway.Ping(ctx); err != nil {
		h.Log.Error("health-check: gateway ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Gateway = "unreachable"
		resp.Message = "Gateway unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
