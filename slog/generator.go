// Package slog provides logging decorators for artdoc services using
// the standard log/slog package.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artdoc"
)

// Ensure LoggingHTMLGenerator implements artdoc.HTMLGenerator.
var _ artdoc.HTMLGenerator = (*LoggingHTMLGenerator)(nil)

// LoggingHTMLGenerator wraps an HTMLGenerator with debug logging.
type LoggingHTMLGenerator struct {
	next   artdoc.HTMLGenerator
	logger *slog.Logger
}

// NewLoggingHTMLGenerator creates a new LoggingHTMLGenerator.
func NewLoggingHTMLGenerator(next artdoc.HTMLGenerator, logger *slog.Logger) *LoggingHTMLGenerator {
	return &LoggingHTMLGenerator{next: next, logger: logger}
}

// GenerateHTML delegates to the wrapped generator and logs the operation.
func (g *LoggingHTMLGenerator) GenerateHTML(ctx context.Context, article string) (html string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate html",
			"article_bytes", len(article),
			"html_bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateHTML(ctx, article)
}

// Ensure LoggingImageGenerator implements artdoc.ImageGenerator.
var _ artdoc.ImageGenerator = (*LoggingImageGenerator)(nil)

// LoggingImageGenerator wraps an ImageGenerator with debug logging.
type LoggingImageGenerator struct {
	next   artdoc.ImageGenerator
	logger *slog.Logger
}

// NewLoggingImageGenerator creates a new LoggingImageGenerator.
func NewLoggingImageGenerator(next artdoc.ImageGenerator, logger *slog.Logger) *LoggingImageGenerator {
	return &LoggingImageGenerator{next: next, logger: logger}
}

// GenerateImage delegates to the wrapped generator and logs the operation.
func (g *LoggingImageGenerator) GenerateImage(ctx context.Context, prompt string) (img *artdoc.Image, err error) {
	defer func(begin time.Time) {
		attrs := []any{"prompt", prompt}
		if img != nil {
			attrs = append(attrs, "inline", len(img.Data) > 0, "mime", img.MIMEType)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		g.logger.Info("generate image", attrs...)
	}(time.Now())
	return g.next.GenerateImage(ctx, prompt)
}
