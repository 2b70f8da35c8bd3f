package sink

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/sysvitals/eventscope/pkg/event"
)

// document is a buffered sink for formats that require a single
// self-contained rendering. Only small-by-construction categories
// (signature events, minidump listings) use document formats, so buffering
// the category is bounded.
type document struct {
	path     string
	headers  []string
	title    string
	render   renderFn
	simulate bool

	rows [][]string
}

type renderFn func(w io.Writer, title string, headers []string, rows [][]string) error

func newDocument(path string, headers []string, title string, render renderFn, simulate bool) *document {
	return &document{
		path:     path,
		headers:  headers,
		title:    title,
		render:   render,
		simulate: simulate,
	}
}

// Write implements the Sink interface.
func (d *document) Write(e event.Event) error {
	return d.WriteRow(EventRow(e, d.headers))
}

// WriteRow implements the Sink interface.
func (d *document) WriteRow(row []string) error {
	d.rows = append(d.rows, row)
	return nil
}

// Close renders the buffered category. Empty categories render no file,
// matching the streaming sink's create-on-first-use behavior.
func (d *document) Close() error {
	if d.simulate || len(d.rows) == 0 {
		return nil
	}

	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", d.path, err)
	}
	if err := d.render(f, d.title, d.headers, d.rows); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", d.path, err)
	}
	return f.Close()
}

// Rows implements the Sink interface.
func (d *document) Rows() int { return len(d.rows) }

// Path implements the Sink interface.
func (d *document) Path() string { return d.path }

var categoryTmpl = template.Must(template.New("category").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; font-size: 0.9em; }
th { background: #2d3748; color: #fff; }
tr:nth-child(even) { background: #f7f7f7; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Count}} record(s)</p>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

func formatHTML(w io.Writer, title string, headers []string, rows [][]string) error {
	return categoryTmpl.Execute(w, struct {
		Title   string
		Count   int
		Headers []string
		Rows    [][]string
	}{title, len(rows), headers, rows})
}

func formatText(w io.Writer, title string, headers []string, rows [][]string) error {
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	for i, row := range rows {
		fmt.Fprintf(&b, "Record %d\n", i+1)
		for j, h := range headers {
			fmt.Fprintf(&b, "  %s: %s\n", h, row[j])
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %d record(s)\n", len(rows))
	_, err := io.WriteString(w, b.String())
	return err
}
