// Package illustrate orchestrates the article pipeline: generating HTML with
// image placeholders, generating and saving the images, resolving the
// placeholders and composing previews.
package illustrate

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/artdoc"
	"golang.org/x/sync/errgroup"
)

// Illustrator runs the pipeline steps against files on disk.
type Illustrator struct {
	Files        artdoc.FileService
	HTML         artdoc.HTMLGenerator
	Images       artdoc.ImageGenerator
	Store        artdoc.ImageStore
	Placeholders artdoc.PlaceholderService
	Splicer      artdoc.BodySplicer
	Fetcher      artdoc.Fetcher
	Extractor    artdoc.Extractor
	Converter    artdoc.Converter
	Limiter      artdoc.Limiter
	Concurrency  int
	RetryDelays  []time.Duration
}

// Result holds the outcome of an image generation run.
type Result struct {
	Total     int
	Generated int
	Skipped   int
	Failed    int

	// References holds the saved file name for each placeholder position,
	// or "" where the placeholder was skipped or failed.
	References []string
}

// ProgressEvent reports progress during image generation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Position  int
	Caption   string
	Reference string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSkipped
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting generation progress.
type ProgressFunc func(event ProgressEvent)

// imageResult holds the outcome of processing a single placeholder.
type imageResult struct {
	position  int
	caption   string
	reference string
	skipped   bool
	err       error
}

// GenerateHTML reads an article from input, which is a file path or an
// http(s) URL, converts it to HTML with image placeholders and writes the
// result to output.
func (il *Illustrator) GenerateHTML(ctx context.Context, input, output string) error {
	article, err := il.readArticle(ctx, input)
	if err != nil {
		return err
	}
	if strings.TrimSpace(article) == "" {
		return artdoc.Errorf(artdoc.EINVALID, "article %q is empty", input)
	}

	if il.Limiter != nil {
		if err := il.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	html, err := il.HTML.GenerateHTML(ctx, article)
	if err != nil {
		return err
	}

	return il.Files.WriteFile(ctx, output, html)
}

func (il *Illustrator) readArticle(ctx context.Context, input string) (string, error) {
	if !isURL(input) {
		return il.Files.ReadFile(ctx, input)
	}
	if il.Fetcher == nil || il.Extractor == nil || il.Converter == nil {
		return "", artdoc.Errorf(artdoc.EINVALID, "URL input is not supported by this configuration")
	}

	page, err := il.Fetcher.Fetch(ctx, input)
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}

	extracted, err := il.Extractor.Extract(page)
	if err != nil {
		return "", err
	}

	markdown, err := il.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(extracted.Title)
	if title != "" && !strings.HasPrefix(strings.TrimSpace(markdown), "# ") {
		markdown = "# " + title + "\n\n" + markdown
	}
	return markdown, nil
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// GenerateImages generates an image for every captioned placeholder in the
// HTML file at htmlPath, saves each one through Store and rewrites the file
// so placeholders reference the saved images. Placeholders without a
// caption, or whose generation fails, keep their original reference.
// The progress callback, if provided, receives events as generation proceeds.
func (il *Illustrator) GenerateImages(ctx context.Context, htmlPath string, progress ProgressFunc) (*Result, error) {
	html, err := il.Files.ReadFile(ctx, htmlPath)
	if err != nil {
		if artdoc.ErrorCode(err) == artdoc.ENOTFOUND {
			return nil, artdoc.Errorf(artdoc.ENOTFOUND, "%s; generate HTML first", artdoc.ErrorMessage(err))
		}
		return nil, err
	}

	captions, err := il.Placeholders.Extract(html)
	if err != nil {
		return nil, err
	}

	total := len(captions)
	if total == 0 {
		return &Result{}, nil
	}

	concurrency := il.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan imageResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, caption := range captions {
			g.Go(func() error {
				resultCh <- il.processPlaceholder(gctx, i+1, caption)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{
		Total:      total,
		References: make([]string, total),
	}
	errs := make([]error, total)
	var completed atomic.Int64

	for r := range resultCh {
		completed.Add(1)
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			Position:  r.position,
			Caption:   r.caption,
		}

		switch {
		case r.skipped:
			result.Skipped++
			event.Type = ProgressSkipped
		case r.err != nil:
			result.Failed++
			errs[r.position-1] = r.err
			event.Type = ProgressFailed
			event.Error = r.err
		default:
			result.Generated++
			result.References[r.position-1] = r.reference
			event.Type = ProgressCompleted
			event.Reference = r.reference
		}

		if progress != nil {
			progress(event)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if result.Generated == 0 {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		il.finish(progress, total)
		return result, nil
	}

	resolved, err := il.Placeholders.Resolve(html, result.References)
	if err != nil {
		return nil, err
	}
	if err := il.Files.WriteFile(ctx, htmlPath, resolved); err != nil {
		return nil, err
	}

	il.finish(progress, total)
	return result, nil
}

func (il *Illustrator) finish(progress ProgressFunc, total int) {
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}
}

// processPlaceholder generates and saves the image for a single placeholder.
func (il *Illustrator) processPlaceholder(ctx context.Context, position int, caption string) imageResult {
	result := imageResult{
		position: position,
		caption:  caption,
	}

	prompt := strings.TrimSpace(caption)
	if prompt == "" {
		result.skipped = true
		return result
	}

	delays := il.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	generate := func(ctx context.Context, prompt string) (*artdoc.Image, error) {
		if il.Limiter != nil {
			if err := il.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		return il.Images.GenerateImage(ctx, prompt)
	}

	img, err := GenerateWithRetry(ctx, prompt, generate, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	ref, err := il.Store.SaveImage(ctx, artdoc.PlaceholderName(position), img)
	if err != nil {
		result.err = err
		return result
	}

	result.reference = ref
	return result
}

// CreatePreview composes the article at articlePath into the body of the
// template at templatePath and writes the page to previewPath.
func (il *Illustrator) CreatePreview(ctx context.Context, templatePath, articlePath, previewPath string) error {
	if !il.Files.Exists(templatePath) {
		return artdoc.Errorf(artdoc.ENOTFOUND, "template file %q does not exist", templatePath)
	}
	if !il.Files.Exists(articlePath) {
		return artdoc.Errorf(artdoc.ENOTFOUND, "article file %q does not exist; generate HTML first", articlePath)
	}

	template, err := il.Files.ReadFile(ctx, templatePath)
	if err != nil {
		return err
	}
	article, err := il.Files.ReadFile(ctx, articlePath)
	if err != nil {
		return err
	}

	preview, err := il.Splicer.SpliceIntoBody(template, article)
	if err != nil {
		return err
	}

	return il.Files.WriteFile(ctx, previewPath, preview)
}

// ExportMarkdown converts the article HTML at htmlPath to Markdown and
// writes it to output.
func (il *Illustrator) ExportMarkdown(ctx context.Context, htmlPath, output string) error {
	html, err := il.Files.ReadFile(ctx, htmlPath)
	if err != nil {
		return err
	}

	markdown, err := il.Converter.Convert(html)
	if err != nil {
		return err
	}

	return il.Files.WriteFile(ctx, output, markdown)
}
