package pandoc_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ykawada/webnovel/pandoc"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("missing binary", func(t *testing.T) {
		t.Parallel()
		b := &pandoc.Builder{Command: "pandoc-does-not-exist"}
		err := b.Build(context.Background(), "# title\n", filepath.Join(t.TempDir(), "out.epub"))
		assert.Error(t, err)
	})

	t.Run("command succeeds", func(t *testing.T) {
		t.Parallel()
		// "true" ignores its arguments and exits zero, which is enough
		// to exercise the temp file plumbing.
		b := &pandoc.Builder{Command: "true"}
		err := b.Build(context.Background(), "# title\n", filepath.Join(t.TempDir(), "out.epub"))
		assert.NoError(t, err)
	})
}
