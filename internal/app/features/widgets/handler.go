// internal/app/features/widgets/handler.go
package widgets

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	uierrors "github.com/dspcoder123/admin-panel/internal/app/features/errors"
	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		Gateway:    gw,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

// listURL rebuilds the widgets list path with the category filter intact,
// so every redirect after a mutation lands back on the same filtered view.
func listURL(category string) string {
	if category == "" {
		return "/dashboard/widgets"
	}
	return "/dashboard/widgets?category=" + url.QueryEscape(category)
}

// widgetFormInput carries the validated text fields of the widget form.
// Numeric fields are coerced separately in parseWidgetForm.
type widgetFormInput struct {
	WidgetName    string `validate:"required,max=200" label:"Widget name"`
	WidgetVendor  string `validate:"required,max=200" label:"Vendor"`
	VisitCategory string `validate:"required,max=100" label:"Category"`
	VisitName     string `validate:"required,max=200" label:"Visit name"`
	PaidOrFree    string `validate:"required,oneof=free paid" label:"Pricing"`
	Status        string `validate:"required,oneof=active inactive" label:"Status"`
}

// parseWidgetForm reads and coerces the widget form. Every field is parsed
// independently so one bad value never zeroes the others. withVisitID is
// false on the update path, where the visit id is readonly and the stored
// value wins regardless of what the form carries. The last return is a
// user-facing validation message; empty means the form parsed cleanly.
func parseWidgetForm(r *http.Request, withVisitID bool) (models.Widget, widgetFormInput, string) {
	in := widgetFormInput{
		WidgetName:    strings.TrimSpace(r.FormValue("widgetName")),
		WidgetVendor:  strings.TrimSpace(r.FormValue("widgetVendor")),
		VisitCategory: strings.TrimSpace(r.FormValue("visitCategory")),
		VisitName:     strings.TrimSpace(r.FormValue("visitName")),
		PaidOrFree:    strings.TrimSpace(r.FormValue("widgetPaidOrFree")),
		Status:        strings.TrimSpace(r.FormValue("visitStatus")),
	}

	w := models.Widget{
		WidgetName:       in.WidgetName,
		WidgetVendor:     in.WidgetVendor,
		VisitCategory:    in.VisitCategory,
		VisitName:        in.VisitName,
		WidgetPaidOrFree: in.PaidOrFree,
		VisitStatus:      in.Status,
	}

	var msgs []string

	// The upstream stores these as numbers; the form ships them as text.
	if withVisitID {
		visitID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("visitId")), 10, 64)
		if err != nil {
			msgs = append(msgs, "Visit ID must be a whole number.")
		} else {
			w.VisitID = visitID
		}
	}

	cost, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("visitCostPerUnit")), 64)
	if err != nil || cost < 0 {
		msgs = append(msgs, "Cost per unit must be a non-negative number.")
	} else {
		w.VisitCostPerUnit = cost
	}

	ageLimit, err := strconv.Atoi(strings.TrimSpace(r.FormValue("visitAgeLimit")))
	if err != nil || ageLimit < 0 {
		msgs = append(msgs, "Age limit must be a non-negative whole number.")
	} else {
		w.VisitAgeLimit = ageLimit
	}

	w.VisitUnit = strings.TrimSpace(r.FormValue("visitUnit"))

	if len(msgs) > 0 {
		return w, in, msgs[0]
	}
	return w, in, ""
}

// fetchCategories loads the category list for form selects; a failure is
// logged but leaves the form usable with a free-text category.
func (h *Handler) fetchCategories(ctx context.Context) []models.WidgetCategory {
	cctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	cats, err := h.Gateway.FetchCategories(cctx)
	if err != nil {
		h.Log.Warn("fetch categories failed", zap.Error(err))
		return nil
	}
	return cats
}
