package main

import (
	"fmt"

	"github.com/rlatmfrl24/maltlock"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Items.DeleteItem(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maltlock.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted item %q\n", c.ID)
	return nil
}
