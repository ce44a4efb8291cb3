// Package views holds the server-rendered HTML templates. Templates are
// embedded so the binary ships self-contained.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Load parses the embedded templates. Called once at router construction.
func Load() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
