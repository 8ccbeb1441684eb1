package main

import (
	"fmt"

	"github.com/fwojciec/artdoc"
)

// Run executes the create-preview command.
func (c *CreatePreviewCmd) Run(deps *Dependencies) error {
	if err := deps.Illustrator.CreatePreview(deps.Ctx, c.Template, c.Article, c.Preview); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Preview saved to %s\n", c.Preview)
	return nil
}
