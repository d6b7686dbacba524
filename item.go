package maltlock

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf16"
)

// MaxSnippetLength is the stored length cap for raw HTML snippets.
const MaxSnippetLength = 280

// ParsedItem is the output of a site parser. It carries no identity yet;
// identity is derived when the item is normalized for storage.
type ParsedItem struct {
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	Summary         string   `json:"summary,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	PreviewImageURL string   `json:"previewImageUrl,omitempty"`
	RawSnippet      string   `json:"rawSnippet,omitempty"`
}

// Item is a persisted listing item. Items are keyed by a stable ID derived
// from (siteID, url, title), so re-crawling the same listing replaces the
// existing row instead of creating a duplicate.
type Item struct {
	ID              string   `json:"id"`
	SiteID          string   `json:"siteId"`
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	PreviewImageURL string   `json:"previewImageUrl,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	RawSnippet      string   `json:"rawSnippet,omitempty"`
	CapturedAt      int64    `json:"capturedAt"` // Unix milliseconds
}

// UpsertResult reports the outcome of an upsert batch.
type UpsertResult struct {
	Items         []*Item `json:"items"`
	InsertedCount int     `json:"insertedCount"`
	UpdatedCount  int     `json:"updatedCount"`
}

// ItemService manages persisted listing items.
type ItemService interface {
	// Upsert normalizes the parsed items, collapses in-batch duplicates,
	// and writes the batch with insert-or-replace semantics keyed by item ID.
	// capturedAt is a Unix-millisecond timestamp applied to every item.
	Upsert(ctx context.Context, siteID string, items []ParsedItem, capturedAt int64) (*UpsertResult, error)

	// ListBySite returns up to limit items for a site, newest first.
	ListBySite(ctx context.Context, siteID string, limit int) ([]*Item, error)

	// DeleteItem removes a single item by ID. Deleting an absent ID is a no-op.
	DeleteItem(ctx context.Context, id string) error

	// ClearAll removes all items and all crawl runs in a single transaction.
	ClearAll(ctx context.Context) error
}

// NormalizeURL canonicalizes an absolute URL through a parse/serialize round
// trip. Values that do not parse as absolute URLs are returned trimmed, so
// callers never have to handle a failure.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" {
		return strings.TrimSpace(raw)
	}
	return u.String()
}

// StableItemID derives the storage key for an item. It is a pure function of
// (siteID, url, title): two captures that differ only by case or surrounding
// whitespace of the URL or title collide to the same ID.
func StableItemID(siteID, rawURL, title string) string {
	key := strings.ToLower(NormalizeURL(rawURL)) + "|" + strings.ToLower(strings.TrimSpace(title))
	return siteID + ":" + hashKey(key)
}

// hashKey is a djb2-xor rolling hash over UTF-16 code units, rendered as
// 8 hex digits. The UTF-16 iteration keeps IDs stable across the data
// migrated from the original extension, which hashed JS string code units.
// Collisions are tolerated; the domain is a handful of sites.
func hashKey(s string) string {
	h := uint32(5381)
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*33 ^ uint32(u)
	}
	return fmt.Sprintf("%08x", h)
}

// DedupPolicy selects which occurrence survives when DedupeByKey collapses
// duplicate (url, title) pairs.
type DedupPolicy int

const (
	// DedupKeepFirst keeps the first occurrence of a duplicate key.
	// Site parsers use this: the top-ranked occurrence wins.
	DedupKeepFirst DedupPolicy = iota

	// DedupKeepLast keeps the field values of the last occurrence.
	// The storage layer uses this for in-batch collapsing by ID.
	DedupKeepLast
)

// DedupeByKey collapses items whose case-insensitive (url, trimmed title)
// pair coincides. Result order follows first appearance of each key; with
// DedupKeepLast the surviving entry carries the last occurrence's fields.
func DedupeByKey(items []ParsedItem, policy DedupPolicy) []ParsedItem {
	seen := make(map[string]int, len(items))
	result := make([]ParsedItem, 0, len(items))

	for _, item := range items {
		key := strings.ToLower(item.URL) + "|" + strings.ToLower(strings.TrimSpace(item.Title))
		if at, ok := seen[key]; ok {
			if policy == DedupKeepLast {
				result[at] = item
			}
			continue
		}
		seen[key] = len(result)
		result = append(result, item)
	}

	return result
}
