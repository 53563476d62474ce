package webnovel

// Extractor pulls named fields out of one raw page's markup. A selector
// that matches nothing yields an empty string or empty sequence, never
// an error: upstream markup drift degrades the output instead of
// failing the run. Each method is an independent contract against a
// specific structural pattern in the source markup, so the extraction
// schema can be tested and updated separately from assembly logic.
type Extractor interface {
	// BookTitle returns the book title from the index page.
	BookTitle(page string) string

	// Author returns the writer name from the index page. Any anchor
	// wrapper around the name is stripped; the name text is preserved.
	Author(page string) string

	// Volumes returns the index page's volume structure in listing
	// order. A page without volume headers yields a single unlabeled
	// volume whose chapter list spans the whole page.
	Volumes(page string) []Volume

	// NextPageURL returns the relative URL of the next
	// table-of-contents page, or "" on the last page.
	NextPageURL(page string) string

	// ChapterTitle returns the subtitle heading of a chapter page.
	ChapterTitle(page string) string

	// Paragraphs returns the raw inner content of each paragraph block
	// within a chapter page's body container, in order. Inline markup
	// is preserved verbatim.
	Paragraphs(page string) []string
}
