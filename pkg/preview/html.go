package preview

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/saltsmart/tikzgo/pkg/store"
)

// indexData feeds the document list page.
type indexData struct {
	Documents []*store.Document
}

// documentData feeds the single-document page.
type documentData struct {
	Document *store.Document
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>tikzgo</title>
<style>` + pageStyle + `</style>
</head>
<body>
<h1>tikzgo</h1>
{{if .Documents}}
<ul class="documents">
{{range .Documents}}
<li>
<a href="/documents/{{.ID}}">{{.Name}}</a>
<span class="meta">{{.UpdatedAt.Format "2006-01-02 15:04"}}{{if not .Compiled}} · not compiled{{end}}</span>
</li>
{{end}}
</ul>
{{else}}
<p class="empty">No documents yet. POST source to /documents to add one.</p>
{{end}}
</body>
</html>
`))

var documentTemplate = template.Must(template.New("document").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Document.Name}} · tikzgo</title>
<style>` + pageStyle + `</style>
</head>
<body>
<h1>{{.Document.Name}}</h1>
<p class="nav">
<a href="/">all documents</a> ·
<a href="/documents/{{.Document.ID}}.pdf">pdf</a> ·
<a href="/documents/{{.Document.ID}}.png">png</a>
</p>
<img class="drawing" src="/documents/{{.Document.ID}}.png" alt="{{.Document.Name}}">
<h2>Source</h2>
<pre>{{.Document.Source}}</pre>
{{if .Document.Compiled}}
<p class="meta">compiled with {{.Document.Compiled.Engine}} at {{.Document.Compiled.At.Format "2006-01-02 15:04:05"}}</p>
{{end}}
</body>
</html>
`))

// pageStyle is shared by both pages. Deliberately plain: the preview
// exists to show the drawing, not to be one.
const pageStyle = `
body { font-family: ui-monospace, monospace; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.3rem; }
h2 { font-size: 1rem; margin-top: 2rem; }
a { color: #0a6cad; }
ul.documents { list-style: none; padding: 0; }
ul.documents li { padding: 0.3rem 0; border-bottom: 1px solid #eee; }
.meta { color: #888; font-size: 0.85rem; margin-left: 0.5rem; }
.empty { color: #888; }
.nav { color: #888; }
img.drawing { max-width: 100%; border: 1px solid #eee; background: #fff; }
pre { background: #f6f6f6; padding: 1rem; overflow-x: auto; }
`

// renderHTML executes a page template into a buffer first, so a
// template error surfaces as a 500 rather than a truncated page.
func (s *Server) renderHTML(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("render page failed", "template", tmpl.Name(), "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
