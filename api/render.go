package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/htol/bookshelf/book"
	"github.com/htol/bookshelf/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"title": func(s string) string {
		return cases.Title(language.Und, cases.NoLower).String(s)
	},
}).ParseFS(templateFS, "templates/*.html"))

// page is the data passed to every view
type page struct {
	Heading   string
	Records   []book.Record
	Query     string
	Deletable bool
}

// render executes the named view into a buffer first so a template error
// never leaves a half-written page behind.
func render(w http.ResponseWriter, name string, data page) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		respondWithError(w, "failed to render page", err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write page", "template", name, "error", err)
	}
}
