// Package fs provides file-based storage for articles, generated HTML and images.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/artdoc"
)

// Ensure FileService implements artdoc.FileService at compile time.
var _ artdoc.FileService = (*FileService)(nil)

// FileService reads and writes UTF-8 text files on the local filesystem.
type FileService struct{}

// NewFileService creates a new FileService.
func NewFileService() *FileService {
	return &FileService{}
}

// ReadFile returns the content of the file at path.
func (s *FileService) ReadFile(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", artdoc.Errorf(artdoc.EINVALID, "file path required")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", artdoc.Errorf(artdoc.ENOTFOUND, "file %q does not exist", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile replaces the file at path with content.
func (s *FileService) WriteFile(ctx context.Context, path, content string) error {
	if path == "" {
		return artdoc.Errorf(artdoc.EINVALID, "file path required")
	}
	return writeFileAtomic(path, []byte(content))
}

// Exists reports whether a regular file exists at path.
func (s *FileService) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it over path, so readers see either the old or the new file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
