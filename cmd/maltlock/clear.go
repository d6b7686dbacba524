package main

import (
	"fmt"

	"github.com/rlatmfrl24/maltlock"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return maltlock.Errorf(maltlock.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Items.ClearAll(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maltlock.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cleared all items and crawl runs")
	return nil
}
