// internal/app/features/visits/views/views.go
package visits

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "visits",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
