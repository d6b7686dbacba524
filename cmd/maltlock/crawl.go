package main

import (
	"fmt"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.All {
		results := deps.Crawler.CrawlAll(deps.Ctx, maltlock.TargetSites, c.Concurrency)
		failed := 0
		for _, result := range results {
			if result.Err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "%-26s error: %s\n", result.Site.ID, maltlock.ErrorMessage(result.Err))
				continue
			}
			printSummary(deps, result.Summary)
		}
		if failed > 0 {
			return maltlock.Errorf(maltlock.EINTERNAL, "%d of %d sites failed", failed, len(results))
		}
		return nil
	}

	if c.Site == "" {
		return maltlock.Errorf(maltlock.EINVALID, "site ID required (or use --all)")
	}

	site, err := maltlock.SiteByID(c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'maltlock sites' to see available sites.\n", maltlock.ErrorMessage(err))
		return err
	}

	summary, err := deps.Crawler.CrawlSite(deps.Ctx, site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maltlock.ErrorMessage(err))
		return err
	}

	printSummary(deps, summary)
	return nil
}

func printSummary(deps *Dependencies, s *crawl.Summary) {
	fmt.Fprintf(deps.Stdout, "%-26s %s: %d parsed, %d stored (%d new, %d updated)\n",
		s.SiteID, s.Status, s.ParsedCount, s.StoredCount, s.InsertedCount, s.UpdatedCount)
}
