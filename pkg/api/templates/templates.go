// Package templates holds the HTML page served by the web front end.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse parses every embedded page template
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
