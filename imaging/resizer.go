// Package imaging downscales generated images using disintegration/imaging.
package imaging

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fwojciec/artdoc"
)

// Ensure Resizer implements artdoc.ImageResizer at compile time.
var _ artdoc.ImageResizer = (*Resizer)(nil)

// Resizer shrinks images to a maximum width with Lanczos resampling.
// The output keeps the input's encoding: JPEG stays JPEG, everything else
// decodable is written as PNG.
type Resizer struct {
	quality int
}

// NewResizer creates a new Resizer.
func NewResizer() *Resizer {
	return &Resizer{quality: 90}
}

// Resize returns data re-encoded no wider than maxWidth pixels.
func (r *Resizer) Resize(data []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		return nil, artdoc.Errorf(artdoc.EINVALID, "max width must be positive, got %d", maxWidth)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, artdoc.Errorf(artdoc.EINVALID, "failed to decode image: %v", err)
	}
	if cfg.Width <= maxWidth {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, artdoc.Errorf(artdoc.EINVALID, "failed to decode image: %v", err)
	}

	// Height zero preserves the aspect ratio.
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	outFormat := imaging.PNG
	if format == "jpeg" {
		outFormat = imaging.JPEG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, outFormat, imaging.JPEGQuality(r.quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
