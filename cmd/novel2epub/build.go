package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ykawada/webnovel"
	"github.com/ykawada/webnovel/assemble"
	"github.com/ykawada/webnovel/markdown"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if c.Local {
		return c.runLocal(deps)
	}
	return c.runDownload(deps)
}

// runLocal converts an already-rendered markdown document.
func (c *BuildCmd) runLocal(deps *Dependencies) error {
	doc, err := os.ReadFile(c.Book)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	base := filepath.Base(c.Book)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return c.produce(deps, string(doc), name)
}

// runDownload assembles the book from the site and converts it.
func (c *BuildCmd) runDownload(deps *Dependencies) error {
	assembler := &assemble.Assembler{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
	}

	opts := assemble.Options{
		Title:    c.Title,
		Volume:   c.Volume,
		Chapters: c.Chapters,
	}

	fmt.Fprintln(deps.Stdout, "Downloading table of contents...")
	progress := func(event assemble.ProgressEvent) {
		switch event.Type {
		case assemble.ProgressIndexPage:
			fmt.Fprintf(deps.Stdout, "    Page %d...\n", event.Page)
		case assemble.ProgressVolumeStarted:
			label := event.VolumeLabel
			if label == "" {
				label = "(untitled)"
			}
			fmt.Fprintf(deps.Stdout, "\nVolume %q (%d/%d)\n", label, event.VolumeIndex, event.VolumeTotal)
		case assemble.ProgressChapterFetched:
			fmt.Fprintf(deps.Stdout, "    Downloading chapter %d/%d\n", event.ChapterIndex, event.ChapterTotal)
		}
	}

	book, err := assembler.AssembleBook(deps.Ctx, c.Book, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webnovel.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nTitle: %s\n", book.Metadata.Title)
	fmt.Fprintf(deps.Stdout, "Author: %s\n", book.Metadata.Author)

	renderer := markdown.New()
	renderer.Annotator = deps.Annotator
	doc := renderer.Render(book)

	return c.produce(deps, doc, outputName(book.Metadata.Title))
}

// produce converts the markdown document into the final book file in
// the current directory. name is the output filename sans extension.
func (c *BuildCmd) produce(deps *Dependencies, doc string, name string) error {
	if c.Furigana {
		name += "_furigana"
	}

	tmpDir, err := os.MkdirTemp("", "novel2epub")
	if err != nil {
		return fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	epubPath := filepath.Join(tmpDir, "book.epub")
	if err := deps.Builder.Build(deps.Ctx, doc, epubPath); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webnovel.ErrorMessage(err))
		return err
	}

	bookPath := epubPath
	outPath := name + ".epub"
	if c.Kepub {
		kepubPath := filepath.Join(tmpDir, "book.kepub.epub")
		if err := deps.Packager.Package(deps.Ctx, epubPath, kepubPath); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webnovel.ErrorMessage(err))
			return err
		}
		bookPath = kepubPath
		outPath = name + ".kepub.epub"
	}

	fmt.Fprintf(deps.Stdout, "Writing %q\n", outPath)
	return copyFile(bookPath, outPath)
}

// outputName derives a filesystem-safe output name from a book title.
func outputName(title string) string {
	name := strings.ReplaceAll(title, "/", "")
	name = strings.ReplaceAll(name, "\\", "")
	return strings.TrimSpace(name)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}
