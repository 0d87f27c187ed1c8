// Package web provides the embedded HTML templates for the public blog
// pages. The API serves JSON; these templates are the minimal reading
// surface rendered server-side.
package web

import "embed"

// TemplateFS embeds the web/templates/ directory tree.
//
//go:embed all:templates
var TemplateFS embed.FS
