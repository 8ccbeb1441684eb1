package main

import (
	"fmt"

	"github.com/fwojciec/artdoc"
)

// Run executes the captions command.
func (c *CaptionsCmd) Run(deps *Dependencies) error {
	html, err := deps.Illustrator.Files.ReadFile(deps.Ctx, c.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}

	placeholders, err := deps.Illustrator.Placeholders.Find(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}

	if len(placeholders) == 0 {
		fmt.Fprintf(deps.Stdout, "No image placeholders found in %s\n", c.HTML)
		return nil
	}

	for i, p := range placeholders {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", i+1, p.Reference, p.Caption)
	}
	return nil
}
