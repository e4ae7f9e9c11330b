// Package web embeds the HTML templates and static files so the binary
// and the handler tests are independent of the working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html static/*
var files embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}

// Static returns an embedded static file by name, e.g. "robots.txt".
func Static(name string) ([]byte, error) {
	return files.ReadFile("static/" + name)
}
