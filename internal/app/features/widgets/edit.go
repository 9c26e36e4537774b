// internal/app/features/widgets/edit.go
package widgets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/flash"
	"github.com/dspcoder123/admin-panel/internal/app/system/inputval"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// findWidget fetches the widget list and picks out one record. The upstream
// has no single-widget read, so edits work from the list snapshot.
func (h *Handler) findWidget(ctx context.Context, id, category string) (models.Widget, error) {
	all, err := h.Gateway.FetchWidgets(ctx, category)
	if err != nil {
		return models.Widget{}, err
	}
	for _, wd := range all {
		if wd.ID == id {
			return wd, nil
		}
	}
	return models.Widget{}, fmt.Errorf("widget %q not found", id)
}

// ServeEdit renders the form pre-filled with an existing widget.
// GET /dashboard/widgets/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	category := query.Get(r, "category")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	widget, err := h.findWidget(ctx, id, "")
	if err != nil {
		h.Log.Warn("load widget for edit failed", zap.String("id", id), zap.Error(err))
		flash.Error(h.SessionMgr, w, r, "Could not load that widget.")
		http.Redirect(w, r, listURL(category), http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "widget_form", formData{
		BaseVM:     viewdata.NewBaseVM(w, r, h.SessionMgr, "Edit widget", listURL(category)).WithTab("widgets"),
		Widget:     widget,
		Categories: h.fetchCategories(r.Context()),
		Category:   category,
		IsEdit:     true,
	})
}

// HandleUpdate validates the form and replaces the widget upstream.
// The visit id is immutable once assigned: the stored value wins over
// whatever the form carries.
// POST /dashboard/widgets/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse widget form failed", err, "Invalid form data.", "/dashboard/widgets")
		return
	}
	category := r.FormValue("listCategory")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.findWidget(ctx, id, "")
	if err != nil {
		h.Log.Warn("load widget for update failed", zap.String("id", id), zap.Error(err))
		flash.Error(h.SessionMgr, w, r, "Could not load that widget.")
		http.Redirect(w, r, listURL(category), http.StatusSeeOther)
		return
	}

	// The visit id field is readonly on the edit form, so its coercion is
	// skipped entirely and the stored value carries over.
	widget, in, coerceMsg := parseWidgetForm(r, false)
	widget.ID = existing.ID
	widget.MongoID = existing.MongoID
	widget.VisitID = existing.VisitID

	reRender := func(msg string) {
		data := formData{
			BaseVM:     viewdata.NewBaseVM(w, r, h.SessionMgr, "Edit widget", listURL(category)).WithTab("widgets"),
			Error:      msg,
			Widget:     widget,
			Categories: h.fetchCategories(r.Context()),
			Category:   category,
			IsEdit:     true,
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

	if err := h.Gateway.UpdateWidget(ctx, id, widget); err != nil {
		h.Log.Error("update widget failed", zap.String("id", id), zap.Error(err))
		reRender(gateway.ErrorMessage(err, "Could not save the widget. Please try again."))
		return
	}

	flash.Success(h.SessionMgr, w, r, "Widget updated.")
	http.Redirect(w, r, listURL(category), http.StatusSeeOther)
}
