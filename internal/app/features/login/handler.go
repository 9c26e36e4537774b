// internal/app/features/login/handler.go
package login

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/ratelimit"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter

	// The single configured admin credential. The password arrives as a
	// bcrypt hash from config; the plaintext never lives in memory between
	// requests.
	AdminUsername     string
	AdminPasswordHash string
}

func NewHandler(sessionMgr *auth.SessionManager, limiter *ratelimit.LoginLimiter, adminUsername, adminPasswordHash string, logger *zap.Logger) *Handler {
	return &Handler{
		Log:               logger,
		SessionMgr:        sessionMgr,
		Limiter:           limiter,
		AdminUsername:     adminUsername,
		AdminPasswordHash: adminPasswordHash,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Username  string
	ReturnURL string
}

// ServeLogin handles GET /login. A signed-in user is sent straight to the
// dashboard instead of seeing the form again.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Sign in", "/"),
		ReturnURL: safeReturn(query.Get(r, "return")),
	})
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "", "", "Invalid form data.")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	returnURL := safeReturn(r.FormValue("return"))

	if username == "" || password == "" {
		h.renderError(w, r, username, returnURL, "Username and password are required.")
		return
	}

	if allowed, reason := h.Limiter.Check(r, username); !allowed {
		h.Log.Warn("login attempt rate limited",
			zap.String("username", username),
			zap.String("ip", ratelimit.ClientIP(r)))
		h.renderError(w, r, username, returnURL, reason)
		return
	}

	if !h.credentialsValid(username, password) {
		h.Log.Info("login failed", zap.String("username", username))
		h.renderError(w, r, username, returnURL, "Invalid username or password.")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, username); err != nil {
		h.Log.Error("session save failed during login", zap.Error(err))
		h.renderError(w, r, username, returnURL, "Could not start a session. Please try again.")
		return
	}
	h.Limiter.ResetUser(username)

	dest := returnURL
	if dest == "" {
		dest = "/dashboard"
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) credentialsValid(username, password string) bool {
	// Constant-time on the username; bcrypt is already constant-time enough
	// on the password side.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.AdminUsername)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(password)) == nil
	return userOK && passOK
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, username, returnURL, msg string) {
	// The view model drains flashes, which saves the session; that write
	// must land before the status header.
	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Sign in", "/"),
		Error:     msg,
		Username:  username,
		ReturnURL: returnURL,
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "login", data)
}

// safeReturn accepts only same-site paths as a post-login destination.
func safeReturn(ret string) string {
	ret = strings.TrimSpace(ret)
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return ""
	}
	return ret
}
