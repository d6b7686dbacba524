package maltlock

import "context"

// RunStatus describes the outcome of a crawl attempt.
type RunStatus string

// RunStatus values.
const (
	RunSuccess RunStatus = "success"
	RunPartial RunStatus = "partial"
	RunFailed  RunStatus = "failed"
)

// Crawl run error codes. A run that stored items carries no code;
// a partial run carries CodeNoItems; a failed run carries the code of the
// stage that broke.
const (
	CodeFetchFailed    = "FETCH_FAILED"
	CodeParseFailed    = "PARSE_FAILED"
	CodeNoItems        = "NO_ITEMS"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnknown        = "UNKNOWN"
)

// CrawlRun is the audit record of one extraction+persistence attempt for one
// site. A run is created once per attempt, mutated only by that attempt, and
// never updated after it is saved.
type CrawlRun struct {
	RunID      string    `json:"runId"`
	SiteID     string    `json:"siteId"`
	StartedAt  int64     `json:"startedAt"`  // Unix milliseconds
	FinishedAt int64     `json:"finishedAt"` // Unix milliseconds
	Status     RunStatus `json:"status"`
	ItemCount  int       `json:"itemCount"`
	ErrorCode  string    `json:"errorCode,omitempty"`

	// Audit extras captured from the fetched page.
	PageTitle   string `json:"pageTitle,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`
}

// Validate returns an error if the run is missing required fields.
func (r *CrawlRun) Validate() error {
	if r.RunID == "" {
		return Errorf(EINVALID, "crawl run ID required")
	}
	if r.SiteID == "" {
		return Errorf(EINVALID, "crawl run site ID required")
	}
	return nil
}

// CrawlRunService persists crawl audit records.
type CrawlRunService interface {
	// SaveRun appends a run record. Run IDs are unique per attempt.
	SaveRun(ctx context.Context, run *CrawlRun) error

	// ListRuns returns up to limit runs for a site, newest first by StartedAt.
	ListRuns(ctx context.Context, siteID string, limit int) ([]*CrawlRun, error)
}
