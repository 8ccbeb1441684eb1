package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/artdoc"
	"github.com/fwojciec/artdoc/illustrate"
)

// Run executes the generate-images command.
func (c *GenerateImagesCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Illustrator.Concurrency = c.Concurrency
	}

	progress := func(event illustrate.ProgressEvent) {
		switch event.Type {
		case illustrate.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d images\n", event.Total)
		case illustrate.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] image %d saved as %s\n", event.Completed, event.Total, event.Position, event.Reference)
		case illustrate.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip image %d: no caption\n", event.Position)
		case illustrate.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip image %d: %s\n", event.Position, describe(event.Error))
		case illustrate.ProgressFinished:
			// Summary printed after generation completes
		}
	}

	result, err := deps.Illustrator.GenerateImages(deps.Ctx, c.HTML, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}

	if result.Total == 0 {
		fmt.Fprintf(deps.Stdout, "No image placeholders found in %s\n", c.HTML)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "  Generated %d of %d images (%d skipped, %d failed)\n",
		result.Generated, result.Total, result.Skipped, result.Failed)
	if result.Generated > 0 {
		fmt.Fprintf(deps.Stdout, "HTML updated: %s\n", c.HTML)
	}
	return nil
}

// describe returns the message of an application error, or the full text
// of any other error.
func describe(err error) string {
	var e *artdoc.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
