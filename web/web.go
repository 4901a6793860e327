// Package web bundles the HTML templates into the binary.
package web

import "embed"

//go:embed templates
var Templates embed.FS
