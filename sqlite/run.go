package sqlite

import (
	"context"

	"github.com/rlatmfrl24/maltlock"
)

// DefaultRunListLimit caps ListRuns when the caller passes no limit.
const DefaultRunListLimit = 20

// Compile-time interface verification.
var _ maltlock.CrawlRunService = (*CrawlRunService)(nil)

// CrawlRunService implements maltlock.CrawlRunService using SQLite.
type CrawlRunService struct {
	db *DB
}

// NewCrawlRunService creates a new CrawlRunService.
func NewCrawlRunService(db *DB) *CrawlRunService {
	return &CrawlRunService{db: db}
}

// SaveRun appends a run record. Runs are append-only; reusing a run ID is a
// conflict, not an update.
func (s *CrawlRunService) SaveRun(ctx context.Context, run *maltlock.CrawlRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawl_runs (run_id, site_id, started_at, finished_at, status, item_count, error_code, page_title, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.SiteID, run.StartedAt, run.FinishedAt, string(run.Status),
		run.ItemCount, run.ErrorCode, run.PageTitle, run.ContentHash)

	return err
}

// ListRuns returns up to limit runs for a site, newest first.
func (s *CrawlRunService) ListRuns(ctx context.Context, siteID string, limit int) ([]*maltlock.CrawlRun, error) {
	if limit <= 0 {
		limit = DefaultRunListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, site_id, started_at, finished_at, status, item_count, error_code, page_title, content_hash
		FROM crawl_runs
		WHERE site_id = ?
		ORDER BY started_at DESC
		LIMIT ?
	`, siteID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*maltlock.CrawlRun{}
	for rows.Next() {
		var run maltlock.CrawlRun
		var status string

		if err := rows.Scan(&run.RunID, &run.SiteID, &run.StartedAt, &run.FinishedAt,
			&status, &run.ItemCount, &run.ErrorCode, &run.PageTitle, &run.ContentHash); err != nil {
			return nil, err
		}
		run.Status = maltlock.RunStatus(status)
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
