package main

import (
	"fmt"

	"github.com/fwojciec/artdoc"
)

// Run executes the generate-html command.
func (c *GenerateHTMLCmd) Run(deps *Dependencies) error {
	if err := deps.Illustrator.GenerateHTML(deps.Ctx, c.Input, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "HTML saved to %s\n", c.Output)
	return nil
}
