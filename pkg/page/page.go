// Package page renders a result panel as a standalone HTML document.
package page

import (
	"html/template"
	"io"

	"github.com/entrhq/fpview/pkg/controller"
	"github.com/entrhq/fpview/pkg/panel"
	"github.com/entrhq/fpview/pkg/presenter"
)

// Document is the data behind one rendered page.
type Document struct {
	Title    string
	Snapshot panel.Snapshot
}

// view wraps presenter output, which is already escaped, as trusted HTML.
type view struct {
	Title          string
	ScanLabel      string
	ScanDisabled   bool
	CopyLabel      string
	ToggleLabel    string
	Loading        bool
	ResultsVisible bool
	RawVisible     bool
	ErrorVisible   bool
	ErrorMessage   string
	Groups         []group
	Plugins        []template.HTML
	RawJSON        string
	Hash           template.HTML
}

type group struct {
	Title string
	Rows  []row
}

type row struct {
	ID    string
	Label string
	Value template.HTML
	Title template.HTML
}

func trusted(s string) template.HTML {
	// #nosec G203 -- presenter output is escaped by format.EscapeHTML
	return template.HTML(s)
}

func groups(f presenter.DisplayFields) []group {
	sections := presenter.Sections(f)
	out := make([]group, 0, len(sections))
	for _, s := range sections {
		g := group{Title: s.Title}
		for _, r := range s.Rows {
			g.Rows = append(g.Rows, row{ID: r.ID, Label: r.Label, Value: trusted(r.Value), Title: trusted(r.Title)})
		}
		out = append(out, g)
	}
	return out
}

func newView(doc Document) view {
	s := doc.Snapshot
	v := view{
		Title:          doc.Title,
		ScanLabel:      s.TriggerLabel,
		ScanDisabled:   !s.TriggerEnabled,
		CopyLabel:      s.Copy.Label,
		ToggleLabel:    s.ToggleLabel,
		Loading:        s.Loading,
		ResultsVisible: s.ResultsVisible,
		RawVisible:     s.RawVisible,
		ErrorVisible:   s.ErrorVisible,
		ErrorMessage:   s.ErrorMessage,
		Groups:         groups(s.Fields),
		RawJSON:        s.Fields.RawJSON,
		Hash:           trusted(s.Fields.Hash),
	}
	if v.Title == "" {
		v.Title = "Browser Fingerprint"
	}
	if v.ToggleLabel == "" {
		v.ToggleLabel = controller.ShowRawLabel
	}
	for _, p := range s.Fields.Plugins {
		v.Plugins = append(v.Plugins, trusted(p))
	}
	return v
}

// Render writes doc as HTML to w.
func Render(w io.Writer, doc Document) error {
	return tmpl.Execute(w, newView(doc))
}

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; background: #1f2937; color: #f9fafb; margin: 2rem; }
.hidden { display: none; }
.card { background: #111827; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
.status-badge { padding: 0 .5rem; border-radius: 4px; }
.status-badge.success { background: #A8E6CF; color: #111827; }
.status-badge.failure { background: #FFB3BA; color: #111827; }
dt { color: #6B7280; }
pre { white-space: pre-wrap; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="controls">
<button id="scan-btn"{{if .ScanDisabled}} disabled{{end}}>{{.ScanLabel}}</button>
<button id="copy-hash-btn">{{.CopyLabel}}</button>
<button id="toggle-json-btn">{{.ToggleLabel}}</button>
</div>
<div id="loading" class="card{{if not .Loading}} hidden{{end}}">Collecting fingerprint...</div>
<div id="error" class="card{{if not .ErrorVisible}} hidden{{end}}">{{.ErrorMessage}}</div>
<div id="results" class="{{if not .ResultsVisible}}hidden{{end}}">
<section class="card">
<h2>Fingerprint Hash</h2>
<code id="fingerprint-hash">{{.Hash}}</code>
</section>
{{- range .Groups}}
<section class="card">
<h2>{{.Title}}</h2>
<dl>
{{- range .Rows}}
<dt>{{.Label}}</dt><dd id="{{.ID}}"{{if .Title}} title="{{.Title}}"{{end}}>{{.Value}}</dd>
{{- end}}
</dl>
</section>
{{- end}}
<section class="card">
<h2>Plugins</h2>
<ul id="plugins-list">
{{- range .Plugins}}
<li>{{.}}</li>
{{- end}}
</ul>
</section>
<section class="card{{if not .RawVisible}} hidden{{end}}">
<h2>Raw Data</h2>
<pre id="json-output">{{.RawJSON}}</pre>
</section>
</div>
</body>
</html>
`
