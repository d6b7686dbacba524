package main

import (
	"fmt"
	"time"

	"github.com/rlatmfrl24/maltlock"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.ListRuns(deps.Ctx, c.Site, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maltlock.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintf(deps.Stdout, "No runs recorded for %q.\n", c.Site)
		return nil
	}

	for _, run := range runs {
		started := time.UnixMilli(run.StartedAt).Format("2006-01-02 15:04:05")
		line := fmt.Sprintf("%s  %s  %-7s  %d items", run.RunID, started, run.Status, run.ItemCount)
		if run.ErrorCode != "" {
			line += "  " + run.ErrorCode
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
