// Package views renders the server-side auth pages from embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the payload handed to the page template.
type PageData struct {
	Title    string
	Page     string
	Messages []string
}

// Renderer renders auth pages from the embedded template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page with the given data. Errors after the header is
// written cannot be recovered, so they only bubble up for logging.
func (r *Renderer) Render(w http.ResponseWriter, data PageData) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	return r.tmpl.ExecuteTemplate(w, "index.html", data)
}
