// Package templates holds the HTML mail bodies sent by the notifier.
package templates

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

var parsed = template.Must(template.ParseFS(files, "*.html"))

const NewSubmission = "new-submission.html"

// Render executes the named template with data.
func Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
