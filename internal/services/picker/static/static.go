// Package static embeds the picker's stylesheet.
package static

import "embed"

// FS exposes picker static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
