package webnovel

import "strings"

// fullwidthDigits substitutes each ASCII digit with its full-width
// equivalent, as required by upright vertical text.
var fullwidthDigits = strings.NewReplacer(
	"0", "０",
	"1", "１",
	"2", "２",
	"3", "３",
	"4", "４",
	"5", "５",
	"6", "６",
	"7", "７",
	"8", "８",
	"9", "９",
)

// Normalize applies the typographic substitutions required by vertical
// Japanese text: the HTML quote entity becomes a literal double quote,
// then ASCII digits become full-width. It is pure and total, and must
// only run on already-extracted leaf text, never on strings that may
// still contain markup attributes or URLs, which the digit substitution
// would corrupt.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "&quot;", `"`)
	return fullwidthDigits.Replace(text)
}

// ASCIIToFullwidth converts every printable ASCII rune to its
// full-width form and the ASCII space to an ideographic space. Used for
// text that appears on the title page.
func ASCIIToFullwidth(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 0x21 && r <= 0x7e:
			sb.WriteRune(r + (0xff01 - 0x21))
		case r == ' ':
			sb.WriteRune('　')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
