package mock

import (
	"context"

	"github.com/ykawada/webnovel"
)

var _ webnovel.DocumentBuilder = (*DocumentBuilder)(nil)

// DocumentBuilder is a mock implementation of webnovel.DocumentBuilder.
type DocumentBuilder struct {
	BuildFn func(ctx context.Context, doc string, outPath string) error
}

func (b *DocumentBuilder) Build(ctx context.Context, doc string, outPath string) error {
	return b.BuildFn(ctx, doc, outPath)
}

var _ webnovel.Packager = (*Packager)(nil)

// Packager is a mock implementation of webnovel.Packager.
type Packager struct {
	PackageFn func(ctx context.Context, inPath, outPath string) error
}

func (p *Packager) Package(ctx context.Context, inPath, outPath string) error {
	return p.PackageFn(ctx, inPath, outPath)
}
