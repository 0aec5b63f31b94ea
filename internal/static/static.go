// Package static serves the storefront's SEO files from local disk or S3.
package static

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested file does not exist in a source.
var ErrNotFound = errors.New("static file not found")

// Source loads a static file by name.
type Source interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// Files maps every servable file name to its content type. Anything else is never read.
var Files = map[string]string{
	"robots.txt":    "text/plain; charset=utf-8",
	"sitemap.xml":   "application/xml",
	"manifest.json": "application/json",
}

// ContentType reports the content type of name and whether name may be served at all.
func ContentType(name string) (string, bool) {
	ct, ok := Files[name]
	return ct, ok
}
