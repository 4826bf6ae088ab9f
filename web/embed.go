// Package web provides the embedded landing page template and static assets.
package web

import "embed"

//go:embed index.html.tmpl static
var FS embed.FS
