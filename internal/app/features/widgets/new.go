// internal/app/features/widgets/new.go
package widgets

import (
	"context"
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/flash"
	"github.com/dspcoder123/admin-panel/internal/app/system/inputval"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type formData struct {
	viewdata.BaseVM
	Error      string
	Widget     models.Widget
	Categories []models.WidgetCategory
	Category   string // active list filter, carried through the form
	IsEdit     bool
}

// ServeNew renders the empty widget form.
// GET /dashboard/widgets/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	category := query.Get(r, "category")

	templates.Render(w, r, "widget_form", formData{
		BaseVM:     viewdata.NewBaseVM(w, r, h.SessionMgr, "New widget", listURL(category)).WithTab("widgets"),
		Categories: h.fetchCategories(r.Context()),
		Category:   category,
		Widget:     models.Widget{VisitStatus: models.StatusActive, WidgetPaidOrFree: models.PricingFree},
	})
}

// HandleCreate validates the form and posts the new widget upstream.
// POST /dashboard/widgets
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse widget form failed", err, "Invalid form data.", "/dashboard/widgets")
		return
	}
	category := r.FormValue("listCategory")

	widget, in, coerceMsg := parseWidgetForm(r, true)

	reRender := func(msg string) {
		// NewBaseVM saves the session while draining flashes, so the view
		// model must exist before the status header goes out.
		data := formData{
			BaseVM:     viewdata.NewBaseVM(w, r, h.SessionMgr, "New widget", listURL(category)).WithTab("widgets"),
			Error:      msg,
			Widget:     widget,
			Categories: h.fetchCategories(r.Context()),
			Category:   category,
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		templates.Render(w, r, "widget_form", data)
	}

	if result := inputval.Validate(in); result.HasErrors() {
		reRender(result.First())
		return
	}
	if coerceMsg != "" {
		reRender(coerceMsg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.CreateWidget(ctx, widget); err != nil {
		h.Log.Error("create widget failed", zap.Error(err))
		reRender(gateway.ErrorMessage(err, "Could not create the widget. Please try again."))
		return
	}

	flash.Success(h.SessionMgr, w, r, "Widget created.")
	http.Redirect(w, r, listURL(category), http.StatusSeeOther)
}
