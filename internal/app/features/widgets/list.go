// internal/app/features/widgets/list.go
package widgets

import (
	"context"
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/search"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type listData struct {
	viewdata.BaseVM
	Query      string
	Category   string
	Categories []models.WidgetCategory
	Widgets    []models.Widget
	Total      int
	Error      string
}

// ServeList renders the widgets table, optionally filtered by category
// (upstream) and search query (local).
// GET /dashboard/widgets
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	searchQuery := query.Get(r, "search")
	category := query.Get(r, "category")

	data := listData{
		BaseVM:   viewdata.NewBaseVM(w, r, h.SessionMgr, "Widgets", "/dashboard").WithTab("widgets"),
		Query:    searchQuery,
		Category: category,
	}

	data.Categories = h.fetchCategories(ctx)

	all, err := h.Gateway.FetchWidgets(ctx, category)
	if err != nil {
		h.Log.Warn("fetch widgets failed", zap.Error(err))
		data.Error = gateway.ErrorMessage(err, "Could not load widgets. Please try again.")
		templates.Render(w, r, "widgets_list", data)
		return
	}

	data.Total = len(all)
	data.Widgets = search.Filter(all, searchQuery, func(wd models.Widget) []string {
		return wd.SearchFields()
	})

	templates.Render(w, r, "widgets_list", data)
}
