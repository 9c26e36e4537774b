// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/http"
	"time"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/search"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
}

func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		Gateway:    gw,
		SessionMgr: sessionMgr,
	}
}

// row is one rendered table line, with display-formatted fields.
type row struct {
	Avatar   string
	Name     string
	Email    string
	Mobile   string
	Provider string
	Verified bool
	Joined   string
	ID       string
}

type listData struct {
	viewdata.BaseVM
	Query string
	Rows  []row
	Total int
	Error string
}

// ServeList renders the verified users table.
// GET /dashboard/users
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	searchQuery := query.Get(r, "search")

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SessionMgr, "Users", "/dashboard").WithTab("users"),
		Query:  searchQuery,
	}

	all, err := h.Gateway.FetchUsers(ctx)
	if err != nil {
		// The page still renders; the table is just empty with a banner.
		h.Log.Warn("fetch users failed", zap.Error(err))
		data.Error = gateway.ErrorMessage(err, "Could not load users. Please try again.")
		templates.Render(w, r, "users_list", data)
		return
	}

	data.Total = len(all)
	data.Rows = buildRows(search.Filter(all, searchQuery, func(u models.User) []string {
		return u.SearchFields()
	}))

	templates.Render(w, r, "users_list", data)
}

func buildRows(users []models.User) []row {
	rows := make([]row, 0, len(users))
	for _, u := range users {
		avatar := ""
		if u.ProfilePicture != nil {
			avatar = *u.ProfilePicture
		}
		rows = append(rows, row{
			Avatar:   avatar,
			Name:     u.Name,
			Email:    u.Email,
			Mobile:   u.Mobile,
			Provider: u.Provider(),
			Verified: u.Verified,
			Joined:   formatJoined(u.CreatedAt),
			ID:       u.ID,
		})
	}
	return rows
}

// formatJoined renders an upstream RFC 3339 timestamp as a short date,
// falling back to the raw string for anything unparseable.
func formatJoined(s string) string {
	if s == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}
