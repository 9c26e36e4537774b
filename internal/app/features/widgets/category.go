// internal/app/features/widgets/category.go
package widgets

import (
	"context"
	"net/http"
	"strings"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/flash"
	"github.com/dspcoder123/admin-panel/internal/app/system/htmlsanitize"
	"github.com/dspcoder123/admin-panel/internal/app/system/inputval"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type categoryInput struct {
	Name        string `validate:"required,max=100" label:"Category name"`
	Description string `validate:"max=500" label:"Description"`
}

// HandleCreateCategory adds a widget category and returns to the list.
// POST /dashboard/widgets/categories
func (h *Handler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse category form failed", err, "Invalid form data.", "/dashboard/widgets")
		return
	}
	category := r.FormValue("listCategory")

	in := categoryInput{
		Name:        strings.TrimSpace(r.FormValue("visitCategory")),
		Description: htmlsanitize.StripTags(strings.TrimSpace(r.FormValue("description"))),
	}

	if result := inputval.Validate(in); result.HasErrors() {
		flash.Error(h.SessionMgr, w, r, result.First())
		http.Redirect(w, r, listURL(category), http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.CreateCategory(ctx, in.Name, in.Description); err != nil {
		h.Log.Error("create category failed", zap.Error(err))
		flash.Error(h.SessionMgr, w, r, gateway.ErrorMessage(err, "Could not create the category."))
		http.Redirect(w, r, listURL(category), http.StatusSeeOther)
		return
	}

	flash.Success(h.SessionMgr, w, r, "Category created.")
	http.Redirect(w, r, listURL(category), http.StatusSeeOther)
}
