// Package pandoc builds EPUB files from markdown documents by shelling
// out to the pandoc binary.
package pandoc

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ykawada/webnovel"
)

// DefaultCommand is the pandoc binary looked up on PATH.
const DefaultCommand = "pandoc"

// Ensure Builder implements webnovel.DocumentBuilder at compile time.
var _ webnovel.DocumentBuilder = (*Builder)(nil)

// Builder converts a markdown document into an EPUB file with a
// bundled vertical-writing stylesheet.
type Builder struct {
	// Command is the pandoc executable to invoke.
	Command string
}

// NewBuilder creates a Builder using the default pandoc command.
func NewBuilder() *Builder {
	return &Builder{Command: DefaultCommand}
}

// Build writes doc and the stylesheet to a temporary directory and runs
// pandoc to produce an EPUB at outPath.
func (b *Builder) Build(ctx context.Context, doc string, outPath string) error {
	tmpDir, err := os.MkdirTemp("", "webnovel")
	if err != nil {
		return webnovel.Errorf(webnovel.EINTERNAL, "creating temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	docPath := filepath.Join(tmpDir, "book.md")
	if err := os.WriteFile(docPath, []byte(doc), 0o644); err != nil {
		return webnovel.Errorf(webnovel.EINTERNAL, "writing document: %v", err)
	}

	cssPath := filepath.Join(tmpDir, "book_style.css")
	if err := os.WriteFile(cssPath, []byte(stylesheet), 0o644); err != nil {
		return webnovel.Errorf(webnovel.EINTERNAL, "writing stylesheet: %v", err)
	}

	cmd := exec.CommandContext(ctx, b.Command, docPath, "--css", cssPath, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return webnovel.Errorf(webnovel.EINTERNAL, "pandoc: %v: %s", err, out)
	}
	return nil
}
