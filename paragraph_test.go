package webnovel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ykawada/webnovel"
)

func TestParagraphsFromRaw(t *testing.T) {
	t.Parallel()

	t.Run("converts line-break-only paragraphs to blank markers", func(t *testing.T) {
		t.Parallel()

		for _, br := range []string{"<br>", "<br/>", "<br />"} {
			paragraphs := webnovel.ParagraphsFromRaw([]string{br})
			assert.Equal(t, []webnovel.Paragraph{webnovel.BlankParagraph()}, paragraphs, br)
		}
	})

	t.Run("treats surrounding whitespace as part of the break", func(t *testing.T) {
		t.Parallel()

		paragraphs := webnovel.ParagraphsFromRaw([]string{"  <br />\n"})

		assert.Equal(t, []webnovel.Paragraph{webnovel.BlankParagraph()}, paragraphs)
	})

	t.Run("drops paragraphs that trim to nothing", func(t *testing.T) {
		t.Parallel()

		paragraphs := webnovel.ParagraphsFromRaw([]string{"", "   ", "\n\t"})

		assert.Empty(t, paragraphs)
	})

	t.Run("preserves order and trims text paragraphs", func(t *testing.T) {
		t.Parallel()

		paragraphs := webnovel.ParagraphsFromRaw([]string{" A ", "<br>", "B"})

		assert.Equal(t, []webnovel.Paragraph{
			webnovel.TextParagraph("A"),
			webnovel.BlankParagraph(),
			webnovel.TextParagraph("B"),
		}, paragraphs)
	})

	t.Run("keeps inline markup verbatim", func(t *testing.T) {
		t.Parallel()

		paragraphs := webnovel.ParagraphsFromRaw([]string{"前<ruby>漢<rt>かん</rt></ruby>後"})

		assert.Equal(t, "前<ruby>漢<rt>かん</rt></ruby>後", paragraphs[0].Text)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, webnovel.ParagraphsFromRaw(nil))
	})
}
