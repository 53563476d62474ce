package mock

import "github.com/ykawada/webnovel"

var _ webnovel.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webnovel.Extractor.
type Extractor struct {
	BookTitleFn    func(page string) string
	AuthorFn       func(page string) string
	VolumesFn      func(page string) []webnovel.Volume
	NextPageURLFn  func(page string) string
	ChapterTitleFn func(page string) string
	ParagraphsFn   func(page string) []string
}

func (e *Extractor) BookTitle(page string) string {
	return e.BookTitleFn(page)
}

func (e *Extractor) Author(page string) string {
	return e.AuthorFn(page)
}

func (e *Extractor) Volumes(page string) []webnovel.Volume {
	return e.VolumesFn(page)
}

func (e *Extractor) NextPageURL(page string) string {
	return e.NextPageURLFn(page)
}

func (e *Extractor) ChapterTitle(page string) string {
	return e.ChapterTitleFn(page)
}

func (e *Extractor) Paragraphs(page string) []string {
	return e.ParagraphsFn(page)
}
