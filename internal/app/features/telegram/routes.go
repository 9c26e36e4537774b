// internal/app/features/telegram/routes.go
package telegram

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the telegram feature routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeCompose)
	r.Post("/", h.HandleSend)
	return r
}
