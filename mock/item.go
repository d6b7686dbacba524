package mock

import (
	"context"

	"github.com/rlatmfrl24/maltlock"
)

var _ maltlock.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of maltlock.ItemService.
type ItemService struct {
	UpsertFn     func(ctx context.Context, siteID string, items []maltlock.ParsedItem, capturedAt int64) (*maltlock.UpsertResult, error)
	ListBySiteFn func(ctx context.Context, siteID string, limit int) ([]*maltlock.Item, error)
	DeleteItemFn func(ctx context.Context, id string) error
	ClearAllFn   func(ctx context.Context) error
}

func (s *ItemService) Upsert(ctx context.Context, siteID string, items []maltlock.ParsedItem, capturedAt int64) (*maltlock.UpsertResult, error) {
	return s.UpsertFn(ctx, siteID, items, capturedAt)
}

func (s *ItemService) ListBySite(ctx context.Context, siteID string, limit int) ([]*maltlock.Item, error) {
	return s.ListBySiteFn(ctx, siteID, limit)
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	return s.DeleteItemFn(ctx, id)
}

func (s *ItemService) ClearAll(ctx context.Context) error {
	return s.ClearAllFn(ctx)
}
