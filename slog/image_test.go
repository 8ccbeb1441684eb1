package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/artdoc"
	"github.com/fwojciec/artdoc/mock"
	artslog "github.com/fwojciec/artdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingImageStore_SaveImage(t *testing.T) {
	t.Parallel()

	t.Run("logs name and reference", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ImageStore{
			SaveImageFn: func(ctx context.Context, name string, img *artdoc.Image) (string, error) {
				return name + ".png", nil
			},
		}

		store := artslog.NewLoggingImageStore(inner, logger)
		ref, err := store.SaveImage(context.Background(), "image_placeholder_1", &artdoc.Image{})

		require.NoError(t, err)
		assert.Equal(t, "image_placeholder_1.png", ref)
		output := buf.String()
		assert.Contains(t, output, "save image")
		assert.Contains(t, output, "name=image_placeholder_1")
		assert.Contains(t, output, "ref=image_placeholder_1.png")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ImageStore{
			SaveImageFn: func(ctx context.Context, name string, img *artdoc.Image) (string, error) {
				return "", errors.New("disk full")
			},
		}

		store := artslog.NewLoggingImageStore(inner, logger)
		_, err := store.SaveImage(context.Background(), "image_placeholder_1", &artdoc.Image{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="disk full"`)
	})
}
