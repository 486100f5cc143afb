// Package web holds the HTML templates of the prediction page.
package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"km": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(files, "templates/*.html"))
}
