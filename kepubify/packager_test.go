package kepubify_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ykawada/webnovel/kepubify"
)

func TestPackager_Package(t *testing.T) {
	t.Parallel()

	t.Run("missing binary", func(t *testing.T) {
		t.Parallel()
		p := &kepubify.Packager{Command: "kepubify-does-not-exist"}
		dir := t.TempDir()
		err := p.Package(context.Background(), filepath.Join(dir, "in.epub"), filepath.Join(dir, "out.kepub.epub"))
		assert.Error(t, err)
	})

	t.Run("command succeeds", func(t *testing.T) {
		t.Parallel()
		p := &kepubify.Packager{Command: "true"}
		dir := t.TempDir()
		err := p.Package(context.Background(), filepath.Join(dir, "in.epub"), filepath.Join(dir, "out.kepub.epub"))
		assert.NoError(t, err)
	})
}
