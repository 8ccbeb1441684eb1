package artdoc

import "context"

// FileService reads and writes the text files the pipeline works on:
// articles, generated HTML, templates and previews.
type FileService interface {
	// ReadFile returns the content of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile replaces the content of the file at path, creating
	// parent directories as needed. Readers never observe a partial write.
	WriteFile(ctx context.Context, path, content string) error

	// Exists reports whether a file exists at path.
	Exists(path string) bool
}

// Limiter throttles calls to rate-limited services.
type Limiter interface {
	// Wait blocks until a call is allowed or ctx is done.
	Wait(ctx context.Context) error
}
