// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the dashboard overview page.
type Handler struct {
	Log        *zap.Logger
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
}

// NewHandler creates a dashboard handler.
func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		Gateway:    gw,
		SessionMgr: sessionMgr,
	}
}

type overviewData struct {
	viewdata.BaseVM
	UserCount   string
	VisitCount  string
	WidgetCount string
}

// ServeOverview renders the landing page with headline counts. Each count is
// best effort: an unreachable upstream shows a dash instead of failing the
// whole page.
// GET /dashboard
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, visits, widgets := "-", "-", "-"

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		if rows, err := h.Gateway.FetchUsers(ctx); err == nil {
			users = strconv.Itoa(len(rows))
		} else {
			h.Log.Warn("overview user count unavailable", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := h.Gateway.FetchVisits(ctx); err == nil {
			visits = strconv.Itoa(len(rows))
		} else {
			h.Log.Warn("overview visit count unavailable", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if rows, err := h.Gateway.FetchWidgets(ctx, ""); err == nil {
			widgets = strconv.Itoa(len(rows))
		} else {
			h.Log.Warn("overview widget count unavailable", zap.Error(err))
		}
	}()
	wg.Wait()

	templates.Render(w, r, "dashboard", overviewData{
		BaseVM:      viewdata.NewBaseVM(w, r, h.SessionMgr, "Dashboard", "/dashboard").WithTab("dashboard"),
		UserCount:   users,
		VisitCount:  visits,
		WidgetCount: widgets,
	})
}
