package webnovel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ykawada/webnovel"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("converts ASCII digits to full-width", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello ２０２４", webnovel.Normalize("hello 2024"))
	})

	t.Run("decodes the quote entity", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `"それ"`, webnovel.Normalize("&quot;それ&quot;"))
	})

	t.Run("decodes quotes before digit substitution", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `"１"`, webnovel.Normalize("&quot;1&quot;"))
	})

	t.Run("leaves text without digits or entities untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "第一章　旅立ち", webnovel.Normalize("第一章　旅立ち"))
	})

	t.Run("is idempotent on normalized text", func(t *testing.T) {
		t.Parallel()

		once := webnovel.Normalize(`chapter 12 said &quot;go&quot;`)
		assert.Equal(t, once, webnovel.Normalize(once))
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webnovel.Normalize(""))
	})
}

func TestASCIIToFullwidth(t *testing.T) {
	t.Parallel()

	t.Run("converts printable ASCII", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Ａｂｃ！", webnovel.ASCIIToFullwidth("Abc!"))
	})

	t.Run("converts spaces to ideographic spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "ａ　ｂ", webnovel.ASCIIToFullwidth("a b"))
	})

	t.Run("passes non-ASCII runes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "第２巻", webnovel.ASCIIToFullwidth("第2巻"))
	})
}
