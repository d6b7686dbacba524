package main

import (
	"fmt"

	"github.com/rlatmfrl24/maltlock"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	for _, site := range maltlock.TargetSites {
		fmt.Fprintf(deps.Stdout, "%-26s %-12s %s\n", site.ID, site.Name, site.URL)
	}
	return nil
}
