package artdoc

import (
	"context"
	"net/http"
	"strings"
)

// Image is a generated image, either inline or at a remote URL.
type Image struct {
	// Prompt is the caption the image was generated from.
	Prompt string

	// URL is set when the provider hosts the image and it must be downloaded.
	URL string

	// Data holds the encoded image bytes when available.
	Data []byte

	// MIMEType is the content type of Data, e.g. "image/png".
	MIMEType string
}

// Extension returns the file extension matching the image's MIME type,
// sniffing Data when the type is unknown. Defaults to ".png".
func (img *Image) Extension() string {
	mimeType := img.MIMEType
	if mimeType == "" && len(img.Data) > 0 {
		mimeType = http.DetectContentType(img.Data)
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")

	switch strings.TrimSpace(strings.ToLower(mimeType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// ImageStore persists generated images.
type ImageStore interface {
	// SaveImage stores img under the given base name and returns the
	// reference to write into the placeholder (a path relative to the
	// document). Images without data are downloaded from their URL first.
	SaveImage(ctx context.Context, name string, img *Image) (string, error)
}

// ImageResizer downscales encoded images.
type ImageResizer interface {
	// Resize returns data re-encoded no wider than maxWidth pixels,
	// preserving aspect ratio. Images already narrow enough are returned
	// unchanged.
	Resize(data []byte, maxWidth int) ([]byte, error)
}
