package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/artdoc"
	main "github.com/fwojciec/artdoc/cmd/artdoc"
	"github.com/fwojciec/artdoc/goquery"
	"github.com/fwojciec/artdoc/illustrate"
	"github.com/fwojciec/artdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateImagesCmd_Run(t *testing.T) {
	t.Parallel()

	files := func(html string, written *string) *mock.FileService {
		return &mock.FileService{
			ReadFileFn: func(context.Context, string) (string, error) { return html, nil },
			WriteFileFn: func(_ context.Context, _ string, content string) error {
				*written = content
				return nil
			},
		}
	}

	t.Run("prints failures and summary", func(t *testing.T) {
		t.Parallel()

		var written string
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Illustrator: &illustrate.Illustrator{
				Files:        files(`<img alt="bee"><img alt="hive">`, &written),
				Placeholders: goquery.NewPlaceholderService(),
				Images: &mock.ImageGenerator{
					GenerateImageFn: func(_ context.Context, prompt string) (*artdoc.Image, error) {
						if prompt == "hive" {
							return nil, artdoc.Errorf(artdoc.EINTERNAL, "image filtered: safety")
						}
						return &artdoc.Image{Data: []byte("x"), MIMEType: "image/png"}, nil
					},
				},
				Store: &mock.ImageStore{
					SaveImageFn: func(_ context.Context, name string, _ *artdoc.Image) (string, error) {
						return name + ".png", nil
					},
				},
				RetryDelays: []time.Duration{},
			},
		}

		cmd := &main.GenerateImagesCmd{HTML: "article.html", Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 2, deps.Illustrator.Concurrency)
		assert.Contains(t, stderr.String(), "skip image 2: image filtered: safety")
		assert.Contains(t, stdout.String(), "Generated 1 of 2 images (0 skipped, 1 failed)")
		assert.Contains(t, stdout.String(), "HTML updated: article.html")
		assert.Contains(t, written, `src="image_placeholder_1.png"`)
	})

	t.Run("reports error when every image fails", func(t *testing.T) {
		t.Parallel()

		var written string
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Illustrator: &illustrate.Illustrator{
				Files:        files(`<img alt="bee">`, &written),
				Placeholders: goquery.NewPlaceholderService(),
				Images: &mock.ImageGenerator{
					GenerateImageFn: func(context.Context, string) (*artdoc.Image, error) {
						return nil, errors.New("quota exceeded")
					},
				},
				Store:       &mock.ImageStore{},
				RetryDelays: []time.Duration{},
			},
		}

		cmd := &main.GenerateImagesCmd{HTML: "article.html"}
		err := cmd.Run(deps)

		require.EqualError(t, err, "quota exceeded")
		assert.Contains(t, stderr.String(), "error: Internal error.")
		assert.Empty(t, written)
	})

	t.Run("reports articles without placeholders", func(t *testing.T) {
		t.Parallel()

		var written string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Illustrator: &illustrate.Illustrator{
				Files:        files(`<p>text</p>`, &written),
				Placeholders: goquery.NewPlaceholderService(),
			},
		}

		cmd := &main.GenerateImagesCmd{HTML: "article.html"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No image placeholders found in article.html")
	})
}
