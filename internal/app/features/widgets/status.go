// internal/app/features/widgets/status.go
package widgets

import (
	"context"
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/flash"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleToggleStatus flips a widget between active and inactive. The form
// carries the status the row displayed; the server computes the flip so a
// stale row still produces a deterministic result.
// POST /dashboard/widgets/{id}/status
func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse status form failed", err, "Invalid form data.", "/dashboard/widgets")
		return
	}
	category := r.FormValue("listCategory")
	next := models.ToggleStatus(r.FormValue("current"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.UpdateWidgetStatus(ctx, id, next); err != nil {
		h.Log.Error("toggle widget status failed", zap.String("id", id), zap.Error(err))
		flash.Error(h.SessionMgr, w, r, gateway.ErrorMessage(err, "Could not update the widget status."))
		http.Redirect(w, r, listURL(category), http.StatusSeeOther)
		return
	}

	flash.Success(h.SessionMgr, w, r, "Widget marked "+next+".")
	http.Redirect(w, r, listURL(category), http.StatusSeeOther)
}
