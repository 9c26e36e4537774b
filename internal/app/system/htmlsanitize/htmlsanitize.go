// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// StripTags removes all HTML, leaving plain text. Used for values that are
// never meant to carry markup, like category descriptions and message
// bodies, before they go upstream.
func StripTags(s string) string {
	return strict.Sanitize(s)
}
