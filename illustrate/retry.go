package illustrate

import (
	"context"
	"time"

	"github.com/fwojciec/artdoc"
)

// GenerateFunc is the signature for an image generation function.
type GenerateFunc func(ctx context.Context, prompt string) (*artdoc.Image, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for generation retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// GenerateWithRetry calls generate until it succeeds, waiting delays[i]
// before retry i+1. EINVALID errors are returned immediately since
// repeating the same request cannot fix them.
func GenerateWithRetry(ctx context.Context, prompt string, generate GenerateFunc, logger LogFunc, delays []time.Duration) (*artdoc.Image, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		img, err := generate(ctx, prompt)
		if err == nil {
			return img, nil
		}
		lastErr = err

		if artdoc.ErrorCode(err) == artdoc.EINVALID || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %q (attempt %d): %v", prompt, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
