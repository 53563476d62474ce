package webnovel

// Annotator rewrites extracted leaf text, for example to add furigana
// readings. It runs after normalization and must pass inline markup
// through verbatim.
type Annotator interface {
	Annotate(text string) string
}
