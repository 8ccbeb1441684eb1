package main

import (
	"fmt"

	"github.com/fwojciec/artdoc"
)

// Run executes the export-markdown command.
func (c *ExportMarkdownCmd) Run(deps *Dependencies) error {
	if err := deps.Illustrator.ExportMarkdown(deps.Ctx, c.HTML, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Markdown saved to %s\n", c.Output)
	return nil
}
