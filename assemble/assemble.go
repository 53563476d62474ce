// Package assemble provides book assembly orchestration. It coordinates
// index-page parsing and sequential chapter fetching into a complete
// webnovel.Book.
package assemble

import (
	"context"
	"fmt"
	"strings"

	"github.com/ykawada/webnovel"
)

// Assembler orchestrates the assembly of one book.
type Assembler struct {
	Fetcher   webnovel.Fetcher
	Extractor webnovel.Extractor
}

// Options control assembly of a single book.
type Options struct {
	// Title overrides the title extracted from the index page. The
	// override is used verbatim, without normalization.
	Title string

	// Volume restricts the book to the Nth volume, 1-indexed. Zero
	// means all volumes. The restriction is validated before any
	// chapter fetch.
	Volume int

	// Chapters restricts each remaining volume to a 1-indexed chapter
	// range. Nil means all chapters.
	Chapters *ChapterRange
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressIndexPage reports the download of one table-of-contents
	// page.
	ProgressIndexPage ProgressType = iota

	// ProgressVolumeStarted reports the start of a volume's chapter
	// downloads.
	ProgressVolumeStarted

	// ProgressChapterFetched reports one completed chapter download.
	ProgressChapterFetched
)

// ProgressEvent reports progress during assembly.
type ProgressEvent struct {
	Type ProgressType

	// Page is the 1-based table-of-contents page number, set for
	// ProgressIndexPage events.
	Page int

	VolumeLabel string
	VolumeIndex int // 1-based
	VolumeTotal int

	ChapterIndex int // 1-based
	ChapterTotal int
}

// ProgressFunc is a callback for reporting assembly progress.
type ProgressFunc func(event ProgressEvent)

// AssembleBook downloads the index page for bookURL, following
// table-of-contents pagination, and assembles the complete book.
func (a *Assembler) AssembleBook(ctx context.Context, bookURL string, opts Options, progress ProgressFunc) (*webnovel.Book, error) {
	mainURL := strings.TrimSuffix(bookURL, "/")

	index, err := a.fetchIndex(ctx, mainURL, progress)
	if err != nil {
		return nil, fmt.Errorf("fetching index page: %w", err)
	}

	return a.Assemble(ctx, index, mainURL, opts, progress)
}

// Assemble builds a book from an already-fetched index page. mainURL is
// the book's main page URL without a trailing slash, used to resolve
// chapter links. Metadata is fully resolved and restrictions are
// validated before the first chapter fetch; chapter fetches are
// sequential and in listing order, and any fetch failure aborts with no
// partial result.
func (a *Assembler) Assemble(ctx context.Context, indexPage, mainURL string, opts Options, progress ProgressFunc) (*webnovel.Book, error) {
	meta := a.metadata(indexPage, opts)

	volumes := a.Extractor.Volumes(indexPage)

	if opts.Volume > 0 {
		if opts.Volume > len(volumes) {
			return nil, webnovel.Errorf(webnovel.EINVALID, "there is no volume %d", opts.Volume)
		}
		// The selected volume's label becomes the book subtitle and the
		// lone remaining volume renders without its own heading.
		selected := volumes[opts.Volume-1]
		meta.Subtitle = selected.Label
		selected.Label = ""
		volumes = []webnovel.Volume{selected}
	}

	if opts.Chapters != nil {
		for i := range volumes {
			restricted, err := opts.Chapters.apply(volumes[i].Chapters)
			if err != nil {
				return nil, err
			}
			volumes[i].Chapters = restricted
		}
	}

	book := &webnovel.Book{Metadata: meta}
	for vi, vol := range volumes {
		notify(progress, ProgressEvent{
			Type:        ProgressVolumeStarted,
			VolumeLabel: vol.Label,
			VolumeIndex: vi + 1,
			VolumeTotal: len(volumes),
		})

		chapters := make([]webnovel.Chapter, 0, len(vol.Chapters))
		for ci, ref := range vol.Chapters {
			page, err := a.Fetcher.Fetch(ctx, mainURL+"/"+ref.URL)
			if err != nil {
				return nil, fmt.Errorf("fetching chapter %d of volume %d: %w", ref.Index, vi+1, err)
			}

			chapters = append(chapters, webnovel.Chapter{
				Title:      a.Extractor.ChapterTitle(page),
				Paragraphs: webnovel.ParagraphsFromRaw(a.Extractor.Paragraphs(page)),
			})

			notify(progress, ProgressEvent{
				Type:         ProgressChapterFetched,
				VolumeLabel:  vol.Label,
				VolumeIndex:  vi + 1,
				VolumeTotal:  len(volumes),
				ChapterIndex: ci + 1,
				ChapterTotal: len(vol.Chapters),
			})
		}

		book.Volumes = append(book.Volumes, webnovel.BookVolume{
			Label:    vol.Label,
			Chapters: chapters,
		})
	}

	return book, nil
}

// fetchIndex downloads the index page, concatenating paginated
// table-of-contents pages in order.
func (a *Assembler) fetchIndex(ctx context.Context, mainURL string, progress ProgressFunc) (string, error) {
	// Pager links are site-absolute, so they resolve against the host
	// part of the main URL.
	baseURL := mainURL
	if i := strings.LastIndex(mainURL, "/"); i >= 0 {
		baseURL = mainURL[:i]
	}

	var sb strings.Builder
	next := mainURL
	for page := 1; next != ""; page++ {
		notify(progress, ProgressEvent{Type: ProgressIndexPage, Page: page})

		content, err := a.Fetcher.Fetch(ctx, next)
		if err != nil {
			return "", err
		}
		sb.WriteString(content)

		if link := a.Extractor.NextPageURL(content); link != "" {
			next = baseURL + link
		} else {
			next = ""
		}
	}
	return sb.String(), nil
}

// metadata resolves book metadata from the index page and options.
func (a *Assembler) metadata(indexPage string, opts Options) webnovel.Metadata {
	title := opts.Title
	if title == "" {
		title = webnovel.Normalize(a.Extractor.BookTitle(indexPage))
	}
	if opts.Volume > 0 {
		title += fmt.Sprintf("（v%d）", opts.Volume)
	}

	return webnovel.Metadata{
		Title:    title,
		Author:   webnovel.Normalize(a.Extractor.Author(indexPage)),
		Language: "ja",
	}
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
