// Package export wraps a rendered HTML fragment into a standalone HTML
// document, either for viewing or for printing to PDF from a browser.
package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// DefaultFilename is the file name offered for exported documents.
	DefaultFilename = "markdown-export.html"
	// DefaultTitle is used when a document has no heading.
	DefaultTitle = "Markdown Export"
)

// Mode selects the stylesheet embedded in the document.
type Mode int

const (
	// ModeScreen embeds the stylesheet for on-screen reading.
	ModeScreen Mode = iota
	// ModePrint embeds an A4 print stylesheet and opens the print dialog on load.
	ModePrint
)

func (m Mode) String() string {
	switch m {
	case ModeScreen:
		return "screen"
	case ModePrint:
		return "print"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// DocumentRequest configures Document.
type DocumentRequest struct {
	Fragment string
	// Title defaults to the first heading of Fragment, then DefaultTitle.
	Title string
	Mode  Mode
}

type documentData struct {
	Title string
	Style template.CSS
	Body  template.HTML
	Print bool
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
{{.Style}}
</style>
</head>
<body>
{{.Body}}
{{- if .Print}}
<script>window.addEventListener("load", function () { window.print(); });</script>
{{- end}}
</body>
</html>
`))

// Document returns fragment wrapped in a complete HTML document. The
// fragment is inserted as is; the title is escaped.
func Document(req DocumentRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = Title(req.Fragment)
	}
	data := documentData{
		Title: title,
		Style: template.CSS(screenStyle),
		Body:  template.HTML(req.Fragment),
	}
	switch req.Mode {
	case ModeScreen:
	case ModePrint:
		data.Style = template.CSS(printStyle)
		data.Print = true
	default:
		return "", fmt.Errorf("export: unknown mode %v", req.Mode)
	}
	var b strings.Builder
	if err := documentTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return b.String(), nil
}

// Title returns the text of the first h1-h6 element in fragment, or
// DefaultTitle when there is none.
func Title(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	depth := 0
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return DefaultTitle
		case html.StartTagToken:
			name, _ := z.TagName()
			if isHeading(atom.Lookup(name)) {
				depth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if depth > 0 && isHeading(atom.Lookup(name)) {
				if title := strings.Join(strings.Fields(b.String()), " "); title != "" {
					return title
				}
				depth = 0
				b.Reset()
			}
		case html.TextToken:
			if depth > 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isHeading(a atom.Atom) bool {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// WriteFile writes doc to path, creating parent directories as needed.
func WriteFile(path, doc string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export: empty path")
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
