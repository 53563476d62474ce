// Package regexp implements webnovel.Extractor with text-pattern
// matching against syosetu.com's markup schema.
//
// The source markup is well-formed enough for pattern matching but not
// strict enough for a structural parser, so extraction deliberately
// stays pattern-based: a selector that fails to match degrades the
// output instead of aborting the run.
package regexp

import (
	"regexp"
	"strings"

	"github.com/ykawada/webnovel"
)

// Index page patterns.
var (
	reBookTitle    = regexp.MustCompile(`(?ms)<p class="novel_title">(.*?)</p>`)
	reWriterBlock  = regexp.MustCompile(`(?ms)<div class="novel_writername">.*?作者：(.*?)</div>`)
	reAnchorOpen   = regexp.MustCompile(`<a[^>]*>`)
	reVolumeHeader = regexp.MustCompile(`(?ms)<div class="chapter_title">(.*?)</div>`)
	reChapterEntry = regexp.MustCompile(`(?ms)<dd class="subtitle">(.*?)</dd>`)
	reChapterURL   = regexp.MustCompile(`href="/[^/]*/([0-9]+)`)
	reNextPage     = regexp.MustCompile(`(?ms)<a href="([^<]*?)" class="novelview_pager-next">次へ</a>`)
)

// Chapter page patterns. The body container pattern tolerates attribute
// order variation but stops at the container's closing tag.
var (
	reChapterTitle = regexp.MustCompile(`(?ms)<p class="novel_subtitle">(.*?)</p>`)
	reChapterBody  = regexp.MustCompile(`(?ms)<div[^>]*id="novel_honbun"[^>]*>(.*?)</div>`)
	reParagraph    = regexp.MustCompile(`(?ms)<p[^>]*>(.*?)</p>`)
)

// Ensure Extractor implements webnovel.Extractor at compile time.
var _ webnovel.Extractor = (*Extractor)(nil)

// Extractor extracts book structure from raw syosetu.com markup.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// BookTitle returns the book title from the index page.
func (e *Extractor) BookTitle(page string) string {
	return strings.TrimSpace(group(reBookTitle.FindStringSubmatch(page), 1))
}

// Author returns the writer name from the index page. The name may be
// wrapped in an anchor; the wrapper markup is stripped and the name
// text kept.
func (e *Extractor) Author(page string) string {
	author := strings.TrimSpace(group(reWriterBlock.FindStringSubmatch(page), 1))
	author = reAnchorOpen.ReplaceAllString(author, "")
	author = strings.ReplaceAll(author, "</a>", "")
	return strings.TrimSpace(author)
}

// Volumes returns the index page's volume structure in listing order.
// With no volume headers the whole page is one unlabeled volume;
// otherwise the page is split at each header and every segment's
// chapter entries are parsed independently.
func (e *Extractor) Volumes(page string) []webnovel.Volume {
	headers := reVolumeHeader.FindAllStringSubmatch(page, -1)
	if len(headers) == 0 {
		return []webnovel.Volume{{Chapters: e.chapterEntries(page)}}
	}

	segments := reVolumeHeader.Split(page, -1)[1:]
	volumes := make([]webnovel.Volume, 0, len(headers))
	for i, header := range headers {
		volumes = append(volumes, webnovel.Volume{
			Label:    strings.TrimSpace(header[1]),
			Chapters: e.chapterEntries(segments[i]),
		})
	}
	return volumes
}

// chapterEntries parses the ordered chapter-link blocks of one index
// segment. Each entry's relative URL fragment is the trailing numeric
// path segment of its link.
func (e *Extractor) chapterEntries(segment string) []webnovel.ChapterRef {
	entries := reChapterEntry.FindAllStringSubmatch(segment, -1)
	if len(entries) == 0 {
		return nil
	}

	refs := make([]webnovel.ChapterRef, 0, len(entries))
	for i, entry := range entries {
		refs = append(refs, webnovel.ChapterRef{
			Index: i + 1,
			URL:   group(reChapterURL.FindStringSubmatch(entry[1]), 1),
		})
	}
	return refs
}

// NextPageURL returns the relative URL of the next table-of-contents
// page, or "" on the last page.
func (e *Extractor) NextPageURL(page string) string {
	return group(reNextPage.FindStringSubmatch(page), 1)
}

// ChapterTitle returns the subtitle heading of a chapter page.
func (e *Extractor) ChapterTitle(page string) string {
	return strings.TrimSpace(group(reChapterTitle.FindStringSubmatch(page), 1))
}

// Paragraphs returns the raw inner content of each paragraph block
// within a chapter page's body container, in order.
func (e *Extractor) Paragraphs(page string) []string {
	body := group(reChapterBody.FindStringSubmatch(page), 1)
	matches := reParagraph.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	paragraphs := make([]string, 0, len(matches))
	for _, m := range matches {
		paragraphs = append(paragraphs, m[1])
	}
	return paragraphs
}

// group returns capture group i of match, or "" when the pattern did
// not match.
func group(match []string, i int) string {
	if match == nil || i >= len(match) {
		return ""
	}
	return match[i]
}
