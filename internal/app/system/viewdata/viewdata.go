// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/flash"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is shown in the header and page titles.
const DefaultSiteName = "Admin Panel"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	ActiveTab   string

	// One-shot notifications queued by the previous request
	Flashes []flash.Message
}

// NewBaseVM creates a fully populated BaseVM for a page. It drains queued
// flash messages, so call it once per render.
func NewBaseVM(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    DefaultSiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}

	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = u.Name
	}

	if sm != nil {
		vm.Flashes = flash.Pop(sm, w, r)
	}

	return vm
}

// WithTab returns a copy of the view model with the active nav tab set.
func (vm BaseVM) WithTab(tab string) BaseVM {
	vm.ActiveTab = tab
	return vm
}
