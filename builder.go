package webnovel

import "context"

// DocumentBuilder converts an intermediate document into a packaged
// e-book file.
type DocumentBuilder interface {
	// Build renders doc, together with the bundled stylesheet, into an
	// EPUB file at outPath.
	Build(ctx context.Context, doc string, outPath string) error
}

// Packager repackages a built e-book for a specific device.
type Packager interface {
	// Package converts the EPUB at inPath into a device-specific file
	// at outPath.
	Package(ctx context.Context, inPath, outPath string) error
}
