package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageSuccess = "success.html"
	pageFailure = "failure.html"
	pageNoToken = "no_token.html"
	pageError   = "error.html"
)

type pages struct {
	tmpl *template.Template
}

func mustParsePages() *pages {
	return &pages{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

type noTokenPage struct {
	BuyOrder string
}

type errorPage struct {
	Message string
}

// render buffers the page so a template error never leaves half a
// document on the wire.
func (p *pages) render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
