// internal/render/index.go
// Package: render
package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// IndexEntry is one figure listed on the index page.
type IndexEntry struct {
	Title string
	File  string
	Count int
}

// Embeddable reports whether browsers can show File inline.
func (e IndexEntry) Embeddable() bool {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(e.File), ".")) {
	case "png", "svg", "jpg", "jpeg", "gif":
		return true
	}
	return false
}

type indexData struct {
	Title   string
	Figures []IndexEntry
}

// WriteIndex renders index.html in dir, linking every figure file.
func WriteIndex(dir, title string, entries []IndexEntry) (string, error) {
	path := filepath.Join(dir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create index: %w", err)
	}
	defer f.Close()

	if err := indexTemplate.Execute(f, indexData{Title: title, Figures: entries}); err != nil {
		return "", fmt.Errorf("could not render index: %w", err)
	}
	return path, nil
}

// Entries pairs each figure with the file it was written to.
func (c *Canvas) Entries(paths []string) []IndexEntry {
	out := make([]IndexEntry, 0, len(paths))
	for i, path := range paths {
		if i >= len(c.Figures) {
			break
		}
		f := c.Figures[i]
		n := 0
		for _, row := range f.Panels {
			for _, panel := range row {
				if panel != nil {
					n++
				}
			}
		}
		out = append(out, IndexEntry{Title: f.Title, File: filepath.Base(path), Count: n})
	}
	return out
}

var indexTemplate = template.Must(template.New("index").Parse(indexTemplateHTML))

const indexTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: sans-serif; background: #f1f5f9; color: #0f172a; margin: 0; }
    header { background: #334155; color: #e2e8f0; padding: 1rem 2rem; }
    nav a { color: #3b82f6; margin-right: 1rem; }
    section { background: #fff; margin: 1.5rem 2rem; padding: 1rem; border: 1px solid #e2e8f0; }
    img { max-width: 100%; }
  </style>
</head>
<body>
  <header><h1>{{ .Title }}</h1></header>
  <nav style="padding: 0 2rem;">
    {{ range .Figures }}<a href="#{{ .File }}">{{ .Title }}</a>{{ end }}
  </nav>
  {{ range .Figures }}
  <section id="{{ .File }}">
    <h2>{{ .Title }} <small>({{ .Count }} benchmarks)</small></h2>
    {{ if .Embeddable }}<img src="{{ .File }}" alt="{{ .Title }}">{{ else }}<a href="{{ .File }}">{{ .File }}</a>{{ end }}
  </section>
  {{ end }}
</body>
</html>
`
