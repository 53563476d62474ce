// Package kepubify converts EPUB files into Kobo's kepub format by
// shelling out to the kepubify binary.
package kepubify

import (
	"context"
	"os/exec"

	"github.com/ykawada/webnovel"
)

// DefaultCommand is the kepubify binary looked up on PATH.
const DefaultCommand = "kepubify"

// Ensure Packager implements webnovel.Packager at compile time.
var _ webnovel.Packager = (*Packager)(nil)

// Packager converts an EPUB into a kepub. Kepub files remain valid
// EPUBs, so the output works on non-Kobo readers too.
type Packager struct {
	// Command is the kepubify executable to invoke.
	Command string
}

// NewPackager creates a Packager using the default kepubify command.
func NewPackager() *Packager {
	return &Packager{Command: DefaultCommand}
}

// Package runs kepubify on the EPUB at inPath, writing the kepub to
// outPath.
func (p *Packager) Package(ctx context.Context, inPath string, outPath string) error {
	cmd := exec.CommandContext(ctx, p.Command, inPath, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return webnovel.Errorf(webnovel.EINTERNAL, "kepubify: %v: %s", err, out)
	}
	return nil
}
