// Package crawl orchestrates one extraction+persistence attempt per site:
// fetch the listing page, dispatch it to the site's parser, upsert the
// extracted items, and record a crawl run for auditing.
package crawl

import (
	"context"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rlatmfrl24/maltlock"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds CrawlAll when the caller passes no limit.
// Sites are distinct hosts, so concurrent crawls never hit the same site.
const DefaultConcurrency = 4

// Summary reports the outcome of one crawl attempt.
type Summary struct {
	SiteID        string             `json:"siteId"`
	RunID         string             `json:"runId"`
	PageURL       string             `json:"pageUrl"`
	ParsedCount   int                `json:"parsedCount"`
	StoredCount   int                `json:"storedCount"`
	InsertedCount int                `json:"insertedCount"`
	UpdatedCount  int                `json:"updatedCount"`
	Status        maltlock.RunStatus `json:"status"`
}

// Result pairs a site with its crawl outcome in a CrawlAll batch.
type Result struct {
	Site    maltlock.TargetSite
	Summary *Summary
	Err     error
}

// Crawler runs crawl attempts against the configured services.
type Crawler struct {
	fetcher   maltlock.Fetcher
	parsers   maltlock.ParserRegistry
	items     maltlock.ItemService
	runs      maltlock.CrawlRunService
	inspector maltlock.PageInspector
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithInspector attaches a page metadata probe; its output is recorded on
// run records. Probe failures never fail a crawl.
func WithInspector(inspector maltlock.PageInspector) Option {
	return func(c *Crawler) {
		c.inspector = inspector
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Crawler) {
		c.now = now
	}
}

// NewCrawler creates a Crawler from its collaborating services.
func NewCrawler(fetcher maltlock.Fetcher, parsers maltlock.ParserRegistry, items maltlock.ItemService, runs maltlock.CrawlRunService, opts ...Option) *Crawler {
	c := &Crawler{
		fetcher: fetcher,
		parsers: parsers,
		items:   items,
		runs:    runs,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CrawlSite runs one attempt for a site. A run record is saved for every
// attempt, including failed ones. At most one crawl per site may be in
// flight at a time; callers enforce this.
func (c *Crawler) CrawlSite(ctx context.Context, site maltlock.TargetSite) (*Summary, error) {
	started := c.now()
	run := &maltlock.CrawlRun{
		RunID:     uuid.NewString(),
		SiteID:    site.ID,
		StartedAt: started.UnixMilli(),
		Status:    maltlock.RunFailed,
	}
	defer c.saveRun(ctx, run)

	html, err := c.fetcher.Fetch(ctx, site.URL)
	if err != nil {
		run.ErrorCode = maltlock.CodeFetchFailed
		return nil, maltlock.Errorf(maltlock.EINTERNAL, "fetch %s: %v", site.URL, err)
	}

	run.ContentHash = hashContent(html)
	if c.inspector != nil {
		if meta, err := c.inspector.Inspect(html); err == nil {
			run.PageTitle = meta.Title
		}
	}

	parsed, err := c.parsers.Parse(site.ParserID, html, site.URL)
	if err != nil {
		run.ErrorCode = maltlock.CodeParseFailed
		return nil, err
	}

	result, err := c.items.Upsert(ctx, site.ID, parsed, c.now().UnixMilli())
	if err != nil {
		run.ErrorCode = maltlock.CodeUnknown
		return nil, err
	}

	// Zero extracted items is a valid empty result, not an error; the run is
	// marked partial so the operator can tell it apart from a healthy crawl.
	status := maltlock.RunSuccess
	if len(result.Items) == 0 {
		status = maltlock.RunPartial
		run.ErrorCode = maltlock.CodeNoItems
	}
	run.Status = status
	run.ItemCount = len(result.Items)

	return &Summary{
		SiteID:        site.ID,
		RunID:         run.RunID,
		PageURL:       site.URL,
		ParsedCount:   len(parsed),
		StoredCount:   len(result.Items),
		InsertedCount: result.InsertedCount,
		UpdatedCount:  result.UpdatedCount,
		Status:        status,
	}, nil
}

// CrawlAll crawls the given sites with bounded concurrency and returns one
// Result per site, in input order. Per-site failures are recorded in their
// Result and never abort the batch.
func (c *Crawler) CrawlAll(ctx context.Context, sites []maltlock.TargetSite, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(sites))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, site := range sites {
		i, site := i, site
		g.Go(func() error {
			summary, err := c.CrawlSite(ctx, site)
			results[i] = Result{Site: site, Summary: summary, Err: err}
			if err != nil {
				c.logger.Error("crawl failed", "site", site.ID, "error", err)
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// saveRun finalizes and persists the run record. Failing to save the audit
// record must not mask the crawl outcome, so the error is only logged.
func (c *Crawler) saveRun(ctx context.Context, run *maltlock.CrawlRun) {
	run.FinishedAt = c.now().UnixMilli()
	if err := c.runs.SaveRun(ctx, run); err != nil {
		c.logger.Error("save crawl run failed", "run", run.RunID, "site", run.SiteID, "error", err)
	}
}

// hashContent computes the xxHash of the fetched page, recorded on runs for
// change detection across attempts.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
