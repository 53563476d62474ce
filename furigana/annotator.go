// Package furigana provides a webnovel.Annotator that adds ruby
// readings to kanji using the kagome morphological analyzer.
package furigana

import (
	"strings"
	"unicode"

	"github.com/ikawaha/kagome/tokenizer"
	"github.com/ykawada/webnovel"
	"golang.org/x/net/html"
)

// readingFeature is the IPA dictionary feature index holding a token's
// katakana reading.
const readingFeature = 7

// Ensure Annotator implements webnovel.Annotator at compile time.
var _ webnovel.Annotator = (*Annotator)(nil)

// Annotator wraps kanji-bearing tokens in <ruby> markup carrying their
// hiragana reading.
type Annotator struct {
	tokenizer tokenizer.Tokenizer
}

// New creates an Annotator. Constructing the tokenizer loads the
// embedded dictionary, which is expensive; reuse one Annotator for the
// whole book.
func New() *Annotator {
	return &Annotator{tokenizer: tokenizer.New()}
}

// Annotate adds ruby readings to the text content of fragment. Inline
// markup passes through verbatim, and text already inside a ruby
// element is left alone.
func (a *Annotator) Annotate(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var sb strings.Builder
	rubyDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			text := string(z.Text())
			if rubyDepth > 0 {
				sb.WriteString(text)
			} else {
				sb.WriteString(a.annotateText(text))
			}
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "ruby" {
				rubyDepth++
			}
			sb.Write(z.Raw())
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "ruby" && rubyDepth > 0 {
				rubyDepth--
			}
			sb.Write(z.Raw())
		default:
			sb.Write(z.Raw())
		}
	}
}

// annotateText annotates one run of plain text.
func (a *Annotator) annotateText(text string) string {
	if !containsKanji(text) {
		return text
	}

	var sb strings.Builder
	for _, token := range a.tokenizer.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}

		surface := token.Surface
		reading := tokenReading(token)
		if reading == "" || !containsKanji(surface) {
			sb.WriteString(surface)
			continue
		}

		sb.WriteString("<ruby>" + surface + "<rt>" + reading + "</rt></ruby>")
	}
	return sb.String()
}

// tokenReading returns the hiragana reading of a token, or "" when the
// dictionary has none.
func tokenReading(token tokenizer.Token) string {
	features := token.Features()
	if len(features) <= readingFeature {
		return ""
	}

	reading := features[readingFeature]
	if reading == "" || reading == "*" {
		return ""
	}
	return katakanaToHiragana(reading)
}

func containsKanji(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Han) {
			return true
		}
	}
	return false
}

// katakanaToHiragana lowers katakana runes into hiragana, leaving
// everything else untouched.
func katakanaToHiragana(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 'ァ' - 'ぁ'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
