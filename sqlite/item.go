package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

// DefaultListLimit caps ListBySite when the caller passes no limit.
const DefaultListLimit = 200

// batchDedupPolicy is the in-batch collapsing policy of the storage layer.
// Unlike the parsers (first-wins, top of the list is authoritative), the
// repository keeps the last occurrence, matching upstream overwrite
// semantics where the freshest fields win.
const batchDedupPolicy = maltlock.DedupKeepLast

// Compile-time interface verification.
var _ maltlock.ItemService = (*ItemService)(nil)

// ItemService implements maltlock.ItemService using SQLite.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

// normalizeParsedItem converts parser output into a persistable item.
// Returns nil when the trimmed title or normalized URL is empty.
func normalizeParsedItem(siteID string, p maltlock.ParsedItem, capturedAt int64) *maltlock.Item {
	title := strings.TrimSpace(p.Title)
	itemURL := maltlock.NormalizeURL(p.URL)
	if title == "" || itemURL == "" {
		return nil
	}

	preview := strings.TrimSpace(p.PreviewImageURL)
	if preview == "" || strings.HasPrefix(preview, "data:") {
		preview = ""
	} else {
		preview = maltlock.NormalizeURL(preview)
	}

	return &maltlock.Item{
		ID:              maltlock.StableItemID(siteID, itemURL, title),
		SiteID:          siteID,
		Title:           title,
		URL:             itemURL,
		PreviewImageURL: preview,
		Summary:         strings.TrimSpace(p.Summary),
		Price:           p.Price,
		RawSnippet:      htmltext.ClipText(strings.TrimSpace(p.RawSnippet), maltlock.MaxSnippetLength),
		CapturedAt:      capturedAt,
	}
}

// dedupeByID collapses duplicate IDs within one batch. Order follows first
// appearance; with DedupKeepLast the surviving entry carries the fields of
// the last occurrence.
func dedupeByID(items []*maltlock.Item, policy maltlock.DedupPolicy) []*maltlock.Item {
	seen := make(map[string]int, len(items))
	result := make([]*maltlock.Item, 0, len(items))

	for _, item := range items {
		if at, ok := seen[item.ID]; ok {
			if policy == maltlock.DedupKeepLast {
				result[at] = item
			}
			continue
		}
		seen[item.ID] = len(result)
		result = append(result, item)
	}

	return result
}

// Upsert normalizes, collapses, and writes a batch of parsed items with
// insert-or-replace semantics keyed by stable ID. An all-invalid batch
// returns zero counts without touching storage.
func (s *ItemService) Upsert(ctx context.Context, siteID string, items []maltlock.ParsedItem, capturedAt int64) (*maltlock.UpsertResult, error) {
	normalized := make([]*maltlock.Item, 0, len(items))
	for _, p := range items {
		if item := normalizeParsedItem(siteID, p, capturedAt); item != nil {
			normalized = append(normalized, item)
		}
	}
	normalized = dedupeByID(normalized, batchDedupPolicy)

	if len(normalized) == 0 {
		return &maltlock.UpsertResult{Items: []*maltlock.Item{}}, nil
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := existingIDs(ctx, tx, normalized)
	if err != nil {
		return nil, err
	}

	for _, item := range normalized {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO items (id, site_id, title, url, preview_image_url, summary, price, raw_snippet, captured_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, item.ID, item.SiteID, item.Title, item.URL, item.PreviewImageURL,
			item.Summary, item.Price, item.RawSnippet, item.CapturedAt); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &maltlock.UpsertResult{
		Items:         normalized,
		UpdatedCount:  len(existing),
		InsertedCount: len(normalized) - len(existing),
	}, nil
}

// existingIDs returns which of the batch IDs are already stored.
func existingIDs(ctx context.Context, tx *sql.Tx, items []*maltlock.Item) (map[string]bool, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(items)), ",")
	args := make([]any, len(items))
	for i, item := range items {
		args[i] = item.ID
	}

	rows, err := tx.QueryContext(ctx, "SELECT id FROM items WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing[id] = true
	}
	return existing, rows.Err()
}

// ListBySite returns up to limit items for a site, newest first.
func (s *ItemService) ListBySite(ctx context.Context, siteID string, limit int) ([]*maltlock.Item, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, site_id, title, url, preview_image_url, summary, price, raw_snippet, captured_at
		FROM items
		WHERE site_id = ?
		ORDER BY captured_at DESC
		LIMIT ?
	`, siteID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*maltlock.Item{}
	for rows.Next() {
		var item maltlock.Item
		var price sql.NullFloat64

		if err := rows.Scan(&item.ID, &item.SiteID, &item.Title, &item.URL,
			&item.PreviewImageURL, &item.Summary, &price, &item.RawSnippet, &item.CapturedAt); err != nil {
			return nil, err
		}
		if price.Valid {
			item.Price = &price.Float64
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// DeleteItem removes a single item. Deleting an absent ID is a no-op.
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	return err
}

// ClearAll empties the item and crawl run collections in one transaction, so
// a partially cleared state is never observable.
func (s *ItemService) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM crawl_runs"); err != nil {
		return err
	}

	return tx.Commit()
}
