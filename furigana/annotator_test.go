package furigana_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ykawada/webnovel/furigana"
)

func TestAnnotator(t *testing.T) {
	t.Parallel()

	annotator := furigana.New()

	t.Run("adds ruby to kanji", func(t *testing.T) {
		out := annotator.Annotate("漢字です")
		assert.Contains(t, out, "<ruby>")
		assert.Contains(t, out, "<rt>")
		assert.Contains(t, out, "です")
	})

	t.Run("kana only text unchanged", func(t *testing.T) {
		assert.Equal(t, "ひらがなとカタカナ", annotator.Annotate("ひらがなとカタカナ"))
	})

	t.Run("empty text unchanged", func(t *testing.T) {
		assert.Equal(t, "", annotator.Annotate(""))
	})

	t.Run("inline markup preserved", func(t *testing.T) {
		out := annotator.Annotate(`before<em>強調</em>after`)
		assert.Contains(t, out, "<em>")
		assert.Contains(t, out, "</em>")
		assert.Contains(t, out, "before")
		assert.Contains(t, out, "after")
	})

	t.Run("existing ruby left alone", func(t *testing.T) {
		in := "<ruby>漢字<rt>かんじ</rt></ruby>"
		assert.Equal(t, in, annotator.Annotate(in))
	})

	t.Run("readings are hiragana", func(t *testing.T) {
		out := annotator.Annotate("漢字")
		start := strings.Index(out, "<rt>")
		end := strings.Index(out, "</rt>")
		if assert.True(t, start >= 0 && end > start) {
			reading := out[start+len("<rt>") : end]
			for _, r := range reading {
				assert.True(t, r >= 'ぁ' && r <= 'ん', "reading %q contains non-hiragana rune %q", reading, r)
			}
		}
	})
}
