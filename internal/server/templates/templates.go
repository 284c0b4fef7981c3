// Package templates embeds the HTML views served by the router. The barcode
// capture page delegates all image decoding to client-side libraries; the
// server only ever sees the decoded text code.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Must parses the embedded views, panicking on failure. The templates ship
// inside the binary, so a parse error is a build defect.
func Must() *template.Template {
	return template.Must(template.ParseFS(files, "*.tmpl"))
}
