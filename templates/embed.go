// Package templates embeds the Dart source templates rendered by the
// generator engine.
package templates

import "embed"

// FS contains the embedded page templates.
//
//go:embed *.tmpl
var FS embed.FS
