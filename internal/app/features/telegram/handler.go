// internal/app/features/telegram/handler.go
package telegram

import (
	"context"
	"net/http"
	"strings"

	"github.com/dspcoder123/admin-panel/internal/app/gateway"
	"github.com/dspcoder123/admin-panel/internal/app/system/auth"
	"github.com/dspcoder123/admin-panel/internal/app/system/flash"
	"github.com/dspcoder123/admin-panel/internal/app/system/timeouts"
	"github.com/dspcoder123/admin-panel/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the Telegram broadcast form.
type Handler struct {
	Log        *zap.Logger
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
}

// NewHandler creates a telegram handler.
func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		Gateway:    gw,
		SessionMgr: sessionMgr,
	}
}

type composeData struct {
	viewdata.BaseVM
	Message   string
	Error     string
	CharLimit int
}

// ServeCompose renders the message form.
// GET /dashboard/telegram
func (h *Handler) ServeCompose(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "telegram_compose", composeData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Telegram", "/dashboard").WithTab("telegram"),
		CharLimit: gateway.TelegramMessageLimit,
	})
}

// HandleSend posts the message to the channel. One attempt, no retry; a
// failure keeps the draft in the form so nothing typed is lost.
// POST /dashboard/telegram
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Log.Warn("parse telegram form failed", zap.Error(err))
		http.Redirect(w, r, "/dashboard/telegram", http.StatusSeeOther)
		return
	}

	message := strings.TrimSpace(r.FormValue("message"))
	if message == "" {
		h.renderError(w, r, "", "Message cannot be empty.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Gateway.SendTelegramMessage(ctx, message); err != nil {
		h.Log.Error("telegram send failed", zap.Int("length", len(message)), zap.Error(err))
		h.renderError(w, r, message, gateway.ErrorMessage(err, "Could not reach Telegram. The message was not sent."))
		return
	}

	h.Log.Info("telegram message sent", zap.Int("length", len(message)))
	flash.Success(h.SessionMgr, w, r, "Message sent to the channel.")
	http.Redirect(w, r, "/dashboard/telegram", http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, message, msg string) {
	// Draining flashes saves the session; that Set-Cookie must be written
	// before the status header.
	data := composeData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Telegram", "/dashboard").WithTab("telegram"),
		Message:   message,
		Error:     msg,
		CharLimit: gateway.TelegramMessageLimit,
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "telegram_compose", data)
}
