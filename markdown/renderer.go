// Package markdown renders an assembled book into the intermediate
// document handed to the document builder: a leading metadata block
// followed by a heading/paragraph body.
package markdown

import (
	"strings"

	"github.com/ykawada/webnovel"
)

// Renderer renders books and chapters as markdown.
type Renderer struct {
	// Annotator, if set, rewrites paragraph text after normalization,
	// for example to add furigana.
	Annotator webnovel.Annotator
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render produces the complete intermediate document for book. Books
// with a single unlabeled volume render flat, with chapters as
// top-level headings; otherwise each volume is a top-level heading with
// its chapters one level down.
func (r *Renderer) Render(book *webnovel.Book) string {
	var sb strings.Builder
	writeMetadata(&sb, book.Metadata)

	if book.Flat() {
		for _, ch := range book.Volumes[0].Chapters {
			sb.WriteString(r.Chapter(ch, 1))
		}
		return sb.String()
	}

	for _, vol := range book.Volumes {
		sb.WriteString("# " + vol.Label + "\n\n")
		for _, ch := range vol.Chapters {
			sb.WriteString(r.Chapter(ch, 2))
		}
	}
	return sb.String()
}

// Chapter renders one chapter as a heading at the given level followed
// by one block per paragraph. Blank markers become the stylesheet's
// blank paragraph element.
func (r *Renderer) Chapter(ch webnovel.Chapter, level int) string {
	if level < 1 {
		level = 1
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", level) + " " + webnovel.Normalize(ch.Title) + "\n\n")

	for _, p := range ch.Paragraphs {
		if p.Blank {
			sb.WriteString("<p class=\"blank\"></p>\n\n")
			continue
		}

		text := webnovel.Normalize(p.Text)
		if r.Annotator != nil {
			text = r.Annotator.Annotate(text)
		}
		sb.WriteString(text + "\n\n")
	}

	sb.WriteString("\n")
	return sb.String()
}

// writeMetadata writes the front-matter block. The title is a plain
// string unless a subtitle exists, in which case both are written as
// typed title entries.
func writeMetadata(sb *strings.Builder, meta webnovel.Metadata) {
	sb.WriteString("---\n")
	if meta.Subtitle != "" {
		sb.WriteString("title:\n")
		sb.WriteString("- type: main\n")
		sb.WriteString("  text: " + meta.Title + "\n")
		sb.WriteString("- type: subtitle\n")
		sb.WriteString("  text: " + meta.Subtitle + "\n")
	} else {
		sb.WriteString("title: " + meta.Title + "\n")
	}
	sb.WriteString("author: " + meta.Author + "\n")
	sb.WriteString("language: " + meta.Language + "\n")
	sb.WriteString("---\n\n")
}
