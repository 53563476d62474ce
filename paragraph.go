package webnovel

import "strings"

// Paragraph is one body block of a chapter: either text content or a
// blank marker used to render intentional vertical spacing.
type Paragraph struct {
	Text  string
	Blank bool
}

// TextParagraph returns a text paragraph with the given content.
func TextParagraph(text string) Paragraph { return Paragraph{Text: text} }

// BlankParagraph returns the blank-marker paragraph.
func BlankParagraph() Paragraph { return Paragraph{Blank: true} }

// breakOnly holds the literal spellings of an empty forced line break.
var breakOnly = map[string]bool{
	"<br>":   true,
	"<br/>":  true,
	"<br />": true,
}

// ParagraphsFromRaw converts raw paragraph content, as captured from a
// chapter page's body container, into a chapter's paragraph sequence.
// A paragraph holding only a forced line break becomes a blank marker:
// authors on the source site overuse line breaks, and the blank marker
// plus the stylesheet's spacing keeps the layout sane. Paragraphs that
// trim to nothing are dropped.
func ParagraphsFromRaw(raw []string) []Paragraph {
	var paragraphs []Paragraph
	for _, content := range raw {
		content = strings.TrimSpace(content)
		switch {
		case breakOnly[content]:
			paragraphs = append(paragraphs, BlankParagraph())
		case content == "":
		default:
			paragraphs = append(paragraphs, TextParagraph(content))
		}
	}
	return paragraphs
}
