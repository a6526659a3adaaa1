// Package pages renders the transaction analysis form and its results container.
package pages

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
)

const (
	PageTemplate     = "index.html"
	FragmentTemplate = "results.html"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Templates parses the embedded page and fragment templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(assets, "templates/*.html")
}

// StaticFS serves the embedded stylesheet.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return http.FS(sub)
}

// Page is the data behind PageTemplate.
type Page struct {
	Form             TransactionForm
	TransactionTypes []string
	Result           ResultView
}

// NewPage builds the page for the given form values and result.
func NewPage(form TransactionForm, result ResultView) Page {
	return Page{
		Form:             form,
		TransactionTypes: pkg.TransactionTypes,
		Result:           result,
	}
}
