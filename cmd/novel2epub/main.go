package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ykawada/webnovel"
	"github.com/ykawada/webnovel/assemble"
	"github.com/ykawada/webnovel/furigana"
	novelhttp "github.com/ykawada/webnovel/http"
	"github.com/ykawada/webnovel/kepubify"
	"github.com/ykawada/webnovel/pandoc"
	"github.com/ykawada/webnovel/regexp"
	novelslog "github.com/ykawada/webnovel/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program. The service fields are nil by default
// and exist so tests can substitute fakes.
type Main struct {
	Fetcher  webnovel.Fetcher
	Builder  webnovel.DocumentBuilder
	Packager webnovel.Packager
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("novel2epub"),
		kong.Description("Download books from syosetu.com and convert them to epub files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Validate the chapter range before anything is downloaded.
	var chapters *assemble.ChapterRange
	if cli.Chapters != "" {
		chapters, err = assemble.ParseChapterRange(cli.Chapters)
		if err != nil {
			return err
		}
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	deps.Fetcher = m.Fetcher
	if deps.Fetcher == nil {
		deps.Fetcher = novelhttp.NewFetcher()
	}
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Fetcher = novelslog.NewLoggingFetcher(deps.Fetcher, logger)
	}

	deps.Extractor = regexp.New()

	// The furigana dictionary is expensive to load, so only construct
	// the annotator when asked for.
	if cli.Furigana {
		deps.Annotator = furigana.New()
	}

	deps.Builder = m.Builder
	if deps.Builder == nil {
		deps.Builder = pandoc.NewBuilder()
	}

	deps.Packager = m.Packager
	if deps.Packager == nil {
		deps.Packager = kepubify.NewPackager()
	}

	cmd := &BuildCmd{
		Book:     cli.Book,
		Title:    cli.Title,
		Volume:   cli.Volume,
		Chapters: chapters,
		Local:    cli.Local,
		Kepub:    cli.Kepub,
		Furigana: cli.Furigana,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Local    bool   `short:"l" help:"Convert a local markdown document instead of downloading anything."`
	Kepub    bool   `short:"k" help:"Convert to Kobo kepub instead of plain epub (requires kepubify to be installed)."`
	Furigana bool   `short:"f" help:"Auto-generate furigana on kanji in the text."`
	Volume   int    `short:"v" placeholder:"N" help:"For books split into volumes, only download volume N."`
	Chapters string `short:"c" placeholder:"N-M" help:"Only download chapters N through M."`
	Title    string `short:"t" help:"Specify an alternate title to use."`
	Verbose  bool   `help:"Log fetch details to stderr."`
	Book     string `arg:"" required:"" help:"URL of the book's main page, or path to a markdown file with -l."`
}
