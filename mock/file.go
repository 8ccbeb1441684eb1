package mock

import (
	"context"

	"github.com/fwojciec/artdoc"
)

var _ artdoc.FileService = (*FileService)(nil)

// FileService is a mock implementation of artdoc.FileService.
type FileService struct {
	ReadFileFn  func(ctx context.Context, path string) (string, error)
	WriteFileFn func(ctx context.Context, path, content string) error
	ExistsFn    func(path string) bool
}

func (s *FileService) ReadFile(ctx context.Context, path string) (string, error) {
	return s.ReadFileFn(ctx, path)
}

func (s *FileService) WriteFile(ctx context.Context, path, content string) error {
	return s.WriteFileFn(ctx, path, content)
}

func (s *FileService) Exists(path string) bool {
	return s.ExistsFn(path)
}

var _ artdoc.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of artdoc.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
