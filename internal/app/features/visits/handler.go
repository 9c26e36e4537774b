// internal/app/features/visits/handler.go
package visits

import (
	"context"
	"net/http"
	"time"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/paging"
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
	ShortID   string
	User      string
	Page      string
	When      string
	IPAddress string
	Location  string
	Referer   string
	Device    string
}

type listData struct {
	viewdata.BaseVM
	Query      string
	Stats      Stats
	Rows       []row
	Filtered   int
	Page       int
	PageCount  int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
	RangeStart int
	RangeEnd   int
	Error      string
}

// ServeList renders the visits table with aggregates and pagination.
// GET /dashboard/visits
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	searchQuery := query.Get(r, "search")
	page := paging.ParsePage(r)

	data := listData{
		BaseVM:   viewdata.NewBaseVM(w, r, h.SessionMgr, "Visits", "/dashboard").WithTab("visits"),
		Query:    searchQuery,
		Page:     page,
		PrevPage: page - 1,
		NextPage: page + 1,
	}

	all, err := h.Gateway.FetchVisits(ctx)
	if err != nil {
		h.Log.Warn("fetch visits failed", zap.Error(err))
		data.Error = gateway.ErrorMessage(err, "Could not load visits. Please try again.")
		data.PageCount = 1
		templates.Render(w, r, "visits_list", data)
		return
	}

	// Aggregates come from the unfiltered list.
	data.Stats = ComputeStats(all)

	filtered := search.Filter(all, searchQuery, func(v models.Visit) []string {
		return v.SearchFields()
	})
	data.Filtered = len(filtered)
	data.PageCount = paging.PageCount(len(filtered), paging.VisitsPageSize)

	pageRows := paging.Slice(filtered, page, paging.VisitsPageSize)
	data.Rows = make([]row, 0, len(pageRows))
	for _, v := range pageRows {
		data.Rows = append(data.Rows, row{
			ShortID:   shortID(v.ID),
			User:      displayUser(v),
			Page:      v.PageKey(),
			When:      formatWhen(v.When()),
			IPAddress: v.IPAddress,
			Location:  v.LocationSummary,
			Referer:   dashIfEmpty(v.Referer),
			Device:    dashIfEmpty(v.DeviceType),
		})
	}

	rng := paging.ComputeRange(page, len(pageRows), paging.VisitsPageSize)
	data.RangeStart = rng.Start
	data.RangeEnd = rng.End
	data.HasPrev = page > 1
	data.HasNext = page < data.PageCount

	templates.Render(w, r, "visits_list", data)
}

// shortID truncates a record id for display; full ids stay in tooltips.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}

func displayUser(v models.Visit) string {
	if v.UserName != "" {
		return v.UserName
	}
	if v.UserEmail != "" {
		return v.UserEmail
	}
	return "Anonymous"
}

// formatWhen renders an upstream RFC 3339 time in a compact local form,
// falling back to the raw string for anything unparseable.
func formatWhen(s string) string {
	if s == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006 3:04 PM")
		}
	}
	return s
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
