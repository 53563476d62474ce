package main

import (
	"context"
	"io"

	"github.com/ykawada/webnovel"
	"github.com/ykawada/webnovel/assemble"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   webnovel.Fetcher
	Extractor webnovel.Extractor
	Annotator webnovel.Annotator
	Builder   webnovel.DocumentBuilder
	Packager  webnovel.Packager
}

// BuildCmd handles the main download-and-convert operation.
type BuildCmd struct {
	Book     string
	Title    string
	Volume   int
	Chapters *assemble.ChapterRange
	Local    bool
	Kepub    bool
	Furigana bool
}
