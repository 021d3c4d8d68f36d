package view

import (
	"io"
	"strings"
	"text/template"

	"github.com/dmitrijs2005/docshare/internal/format"
)

const uploaderTmpl = `Link: {{.LinkID}}
{{- if .Files}}
Selected files:
{{- range .Files}}
  {{printf "%2d" .Number}}. {{glyph .Icon}} {{bold .Name}} ({{.Size}})
{{- end}}
{{- else}}
No files selected. Use "add <path...>" or "drop <dir>".
{{- end}}
Customer name: {{if .CustomerName}}{{.CustomerName}}{{else}}{{dim "(optional)"}}{{end}}
{{- if .Submitting}}
Uploading...
{{- else if .CanSubmit}}
Ready: type "upload" to send.
{{- end}}
{{- with .Progress}}
[{{bar .Percent}}] {{.Percent}}%
{{- end}}
{{- with .Success}}
Upload Successful!
{{.Message}}
Share link: {{.URL}}{{if .Copied}}  {{bold "Copied!"}}{{end}}
{{- end}}
`

const viewerTmpl = `Link: {{.LinkID}}{{if .ExpiresAt}}  expires {{.ExpiresAt}}{{end}}
{{- if .Loading}}
Loading...
{{- else if .Message}}
{{.Message}}
{{- else}}
{{- if .Query}}
Search: {{.Query}}
{{- end}}
Customers:
{{- range .VisibleCustomers}}
 {{if .Selected}}>{{else}} {{end}}{{printf "%2d" .Number}}. [{{.Initials}}] {{.Label}} - {{.FileCount}}{{if .Unviewed}} ({{.Unviewed}}){{end}}
{{- end}}
{{- end}}
{{- with .Selected}}

[{{.Initials}}] {{.Name}}  {{.FileCount}}  {{.TimeLeft}}
{{- range .Files}}
  {{printf "%2d" .Number}}. {{glyph .Icon}} {{if .Viewed}}{{dim .Name}}{{else}}{{bold .Name}} *{{end}}  {{.Size}}  {{.Uploaded}}
{{- end}}
{{- else}}
{{- if not .Message}}

Select a customer to view their files.
{{- end}}
{{- end}}
{{- with .Preview}}

Preview: {{.Title}}
  {{.Source}}
{{- end}}
{{- with .Notice}}
{{dim .}}
{{- end}}
`

func newTemplate(name, text string, st Style) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"bold":  st.bold,
		"dim":   st.dim,
		"glyph": format.Icon.Glyph,
		"bar":   progressBar,
	}).Parse(text))
}

func progressBar(percent int) string {
	const width = 20
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	n := percent * width / 100
	return strings.Repeat("#", n) + strings.Repeat(".", width-n)
}

func RenderUploader(w io.Writer, v UploaderView, st Style) error {
	return newTemplate("uploader", uploaderTmpl, st).Execute(w, v)
}

func RenderViewer(w io.Writer, v ViewerView, st Style) error {
	return newTemplate("viewer", viewerTmpl, st).Execute(w, v)
}
