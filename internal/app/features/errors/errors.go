// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	SiteName   string
	Title      string
	IsLoggedIn bool
	UserName   string
	Message    string
	BackURL    string
}

// Handler is the errors feature handler.
// It has no dependencies; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, "Sign in required")
	data.Message = "Please sign in to continue."
	data.BackURL = "/login"

	templates.Render(w, r, "error_page", data)
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := basePageData(r, "Page not found")
	data.Message = "The page you were looking for does not exist."
	data.BackURL = "/dashboard"

	templates.Render(w, r, "error_page", data)
}

func basePageData(r *http.Request, title string) pageData {
	data := pageData{SiteName: viewdata.DefaultSiteName, Title: title}
	if u, ok := auth.CurrentUser(r); ok {
		data.IsLoggedIn = true
		data.UserName = u.Name
	}
	return data
}
