package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykawada/webnovel"
	"github.com/ykawada/webnovel/assemble"
)

func TestParseChapterRange(t *testing.T) {
	t.Parallel()

	t.Run("parses a valid range", func(t *testing.T) {
		t.Parallel()

		r, err := assemble.ParseChapterRange("3-10")
		require.NoError(t, err)
		assert.Equal(t, &assemble.ChapterRange{Start: 3, End: 10}, r)
	})

	t.Run("accepts a single-chapter range", func(t *testing.T) {
		t.Parallel()

		r, err := assemble.ParseChapterRange("5-5")
		require.NoError(t, err)
		assert.Equal(t, &assemble.ChapterRange{Start: 5, End: 5}, r)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"", "3", "3-", "-10", "a-b", "3-10-12", "3 - 10"} {
			_, err := assemble.ParseChapterRange(s)
			require.Error(t, err, s)
			assert.Equal(t, webnovel.EINVALID, webnovel.ErrorCode(err), s)
		}
	})

	t.Run("rejects a zero start", func(t *testing.T) {
		t.Parallel()

		_, err := assemble.ParseChapterRange("0-4")
		require.Error(t, err)
		assert.Equal(t, webnovel.EINVALID, webnovel.ErrorCode(err))
	})

	t.Run("rejects start greater than end", func(t *testing.T) {
		t.Parallel()

		_, err := assemble.ParseChapterRange("7-3")
		require.Error(t, err)
		assert.Equal(t, webnovel.EINVALID, webnovel.ErrorCode(err))
	})
}
