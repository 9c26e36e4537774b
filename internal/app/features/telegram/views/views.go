// internal/app/features/telegram/views/views.go
package telegram

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "telegram",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
