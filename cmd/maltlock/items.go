package main

import (
	"fmt"
	"time"

	"github.com/rlatmfrl24/maltlock"
)

// Run executes the items command.
func (c *ItemsCmd) Run(deps *Dependencies) error {
	items, err := deps.Items.ListBySite(deps.Ctx, c.Site, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maltlock.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintf(deps.Stdout, "No items stored for %q. Use 'maltlock crawl %s' to collect some.\n", c.Site, c.Site)
		return nil
	}

	for _, item := range items {
		captured := time.UnixMilli(item.CapturedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n    %s\n", item.ID, captured, item.Title, item.URL)
		if c.Full {
			if item.Summary != "" {
				fmt.Fprintf(deps.Stdout, "    summary: %s\n", item.Summary)
			}
			if item.PreviewImageURL != "" {
				fmt.Fprintf(deps.Stdout, "    preview: %s\n", item.PreviewImageURL)
			}
		}
	}

	return nil
}
