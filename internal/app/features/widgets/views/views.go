// internal/app/features/widgets/views/views.go
package widgets

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "widgets",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
