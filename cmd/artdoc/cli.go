package main

import (
	"context"
	"io"

	"github.com/fwojciec/artdoc/illustrate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Illustrator *illustrate.Illustrator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log provider, network and storage calls to stderr"`

	GenerateHTML   GenerateHTMLCmd   `cmd:"" name:"generate-html" help:"Convert an article to HTML with image placeholders"`
	GenerateImages GenerateImagesCmd `cmd:"" name:"generate-images" help:"Generate images for the placeholders in an HTML article"`
	CreatePreview  CreatePreviewCmd  `cmd:"" name:"create-preview" help:"Insert the article into a template page"`
	Captions       CaptionsCmd       `cmd:"" name:"captions" help:"List the image placeholders of an HTML article"`
	ExportMarkdown ExportMarkdownCmd `cmd:"" name:"export-markdown" help:"Convert an HTML article to Markdown"`
}

// GenerateHTMLCmd is the "generate-html" subcommand.
type GenerateHTMLCmd struct {
	Input    string `short:"i" default:"file.txt" help:"Article text or Markdown file, or an http(s) URL"`
	Output   string `short:"o" default:"article.html" help:"Where to write the generated HTML"`
	Provider string `help:"Text provider: openai, gemini or markdown (overrides ARTDOC_PROVIDER)"`
}

// GenerateImagesCmd is the "generate-images" subcommand.
type GenerateImagesCmd struct {
	HTML          string `default:"article.html" help:"HTML article with image placeholders"`
	Concurrency   int    `short:"c" default:"1" help:"Images generated in parallel"`
	MaxWidth      int    `default:"0" help:"Downscale images wider than this many pixels (0 keeps the original size)"`
	ImageProvider string `help:"Image provider: openai or gemini (overrides ARTDOC_IMAGE_PROVIDER)"`
	Size          string `help:"Image size as WIDTHxHEIGHT (overrides ARTDOC_IMAGE_SIZE)"`
}

// CreatePreviewCmd is the "create-preview" subcommand.
type CreatePreviewCmd struct {
	Template string `default:"template.html" help:"Template page with a body section"`
	Article  string `default:"article.html" help:"HTML article to insert"`
	Preview  string `default:"preview.html" help:"Where to write the preview page"`
}

// CaptionsCmd is the "captions" subcommand.
type CaptionsCmd struct {
	HTML string `default:"article.html" help:"HTML article to inspect"`
}

// ExportMarkdownCmd is the "export-markdown" subcommand.
type ExportMarkdownCmd struct {
	HTML   string `default:"article.html" help:"HTML article to convert"`
	Output string `short:"o" default:"article.md" help:"Where to write the Markdown"`
}
