package mock

import (
	"context"

	"github.com/rlatmfrl24/maltlock"
)

var _ maltlock.CrawlRunService = (*CrawlRunService)(nil)

// CrawlRunService is a mock implementation of maltlock.CrawlRunService.
type CrawlRunService struct {
	SaveRunFn  func(ctx context.Context, run *maltlock.CrawlRun) error
	ListRunsFn func(ctx context.Context, siteID string, limit int) ([]*maltlock.CrawlRun, error)
}

func (s *CrawlRunService) SaveRun(ctx context.Context, run *maltlock.CrawlRun) error {
	return s.SaveRunFn(ctx, run)
}

func (s *CrawlRunService) ListRuns(ctx context.Context, siteID string, limit int) ([]*maltlock.CrawlRun, error) {
	return s.ListRunsFn(ctx, siteID, limit)
}
