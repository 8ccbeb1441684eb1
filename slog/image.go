package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artdoc"
)

// Ensure LoggingImageStore implements artdoc.ImageStore.
var _ artdoc.ImageStore = (*LoggingImageStore)(nil)

// LoggingImageStore wraps an ImageStore with debug logging.
type LoggingImageStore struct {
	next   artdoc.ImageStore
	logger *slog.Logger
}

// NewLoggingImageStore creates a new LoggingImageStore.
func NewLoggingImageStore(next artdoc.ImageStore, logger *slog.Logger) *LoggingImageStore {
	return &LoggingImageStore{next: next, logger: logger}
}

// SaveImage delegates to the wrapped store and logs the operation.
func (s *LoggingImageStore) SaveImage(ctx context.Context, name string, img *artdoc.Image) (ref string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save image",
			"name", name,
			"ref", ref,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveImage(ctx, name, img)
}
