package illustrate_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/artdoc"
	"github.com/fwojciec/artdoc/illustrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, illustrate.DefaultRetryDelays())
}

func TestGenerateWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns image on first success", func(t *testing.T) {
		t.Parallel()

		var calls int
		generate := func(_ context.Context, prompt string) (*artdoc.Image, error) {
			calls++
			return &artdoc.Image{Prompt: prompt}, nil
		}

		img, err := illustrate.GenerateWithRetry(context.Background(), "bee", generate, nil, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, "bee", img.Prompt)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success and logs attempts", func(t *testing.T) {
		t.Parallel()

		var calls int
		generate := func(_ context.Context, prompt string) (*artdoc.Image, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("server busy")
			}
			return &artdoc.Image{Prompt: prompt}, nil
		}
		var logs []string
		logger := func(format string, args ...any) {
			logs = append(logs, fmt.Sprintf(format, args...))
		}

		_, err := illustrate.GenerateWithRetry(context.Background(), "bee", generate, logger, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		require.Len(t, logs, 2)
		assert.Contains(t, logs[0], "attempt 2")
		assert.Contains(t, logs[1], "attempt 3")
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		var calls int
		generate := func(context.Context, string) (*artdoc.Image, error) {
			calls++
			return nil, fmt.Errorf("attempt %d failed", calls)
		}

		_, err := illustrate.GenerateWithRetry(context.Background(), "bee", generate, nil, []time.Duration{0, 0})

		require.EqualError(t, err, "attempt 3 failed")
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry EINVALID errors", func(t *testing.T) {
		t.Parallel()

		var calls int
		generate := func(context.Context, string) (*artdoc.Image, error) {
			calls++
			return nil, artdoc.Errorf(artdoc.EINVALID, "image prompt required")
		}

		_, err := illustrate.GenerateWithRetry(context.Background(), "", generate, nil, []time.Duration{0, 0})

		require.Error(t, err)
		assert.Equal(t, artdoc.EINVALID, artdoc.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		generate := func(context.Context, string) (*artdoc.Image, error) {
			cancel()
			return nil, errors.New("server busy")
		}

		_, err := illustrate.GenerateWithRetry(ctx, "bee", generate, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		var calls int
		generate := func(context.Context, string) (*artdoc.Image, error) {
			calls++
			return nil, errors.New("boom")
		}

		_, err := illustrate.GenerateWithRetry(context.Background(), "bee", generate, nil, nil)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
