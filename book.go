package webnovel

// Metadata describes a book for the intermediate document's front
// matter. Subtitle is empty except when a single labeled volume was
// selected out of a multi-volume book.
type Metadata struct {
	Title    string
	Subtitle string
	Author   string
	Language string
}

// ChapterRef locates one chapter in the index page's listing. URL is
// the relative URL fragment from the listing (the trailing numeric path
// segment); Index is the 1-based position in listing order, which is
// the canonical reading order.
type ChapterRef struct {
	Index int
	URL   string
}

// Volume is one volume-level grouping of chapter references parsed from
// the index page. Label is empty for books without volume headers.
type Volume struct {
	Label    string
	Chapters []ChapterRef
}

// Chapter is one chapter extracted from a chapter page. Paragraphs may
// be empty when body extraction found nothing; the chapter still
// renders as a bare heading.
type Chapter struct {
	Title      string
	Paragraphs []Paragraph
}

// BookVolume pairs a volume label with its fetched chapters.
type BookVolume struct {
	Label    string
	Chapters []Chapter
}

// Book is a fully assembled book, ready to be rendered into the
// intermediate document.
type Book struct {
	Metadata Metadata
	Volumes  []BookVolume
}

// Flat reports whether the book renders without volume headings:
// exactly one volume with no label.
func (b *Book) Flat() bool {
	return len(b.Volumes) == 1 && b.Volumes[0].Label == ""
}
