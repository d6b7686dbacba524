package sqlite_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("inserts new items", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "First", URL: "https://example.com/a"},
			{Title: "Second", URL: "https://example.com/b"},
		}, 100)
		require.NoError(t, err)

		assert.Equal(t, 2, result.InsertedCount)
		assert.Equal(t, 0, result.UpdatedCount)

		items, err := s.ListBySite(ctx, "hacker-news", 0)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("same identity overwrites in place", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		_, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Hello", URL: "https://example.com/a", Summary: "first"},
		}, 100)
		require.NoError(t, err)

		// Same identity after normalization: casing and padding differ.
		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: " hello ", URL: "https://EXAMPLE.com/a", Summary: "second"},
		}, 200)
		require.NoError(t, err)

		assert.Equal(t, 0, result.InsertedCount)
		assert.Equal(t, 1, result.UpdatedCount)

		items, err := s.ListBySite(ctx, "hacker-news", 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "second", items[0].Summary)
		assert.Equal(t, int64(200), items[0].CapturedAt)
	})

	t.Run("collapses duplicates within one batch, last wins", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Hello", URL: "https://example.com/a", Summary: "first"},
			{Title: "Hello", URL: "https://example.com/a", Summary: "second"},
		}, 100)
		require.NoError(t, err)

		assert.Equal(t, 1, result.InsertedCount)
		assert.Equal(t, 0, result.UpdatedCount)

		items, err := s.ListBySite(ctx, "hacker-news", 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "second", items[0].Summary)
	})

	t.Run("mixed insert and update accounting", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		_, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Known", URL: "https://example.com/known"},
		}, 100)
		require.NoError(t, err)

		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Known", URL: "https://example.com/known"},
			{Title: "New", URL: "https://example.com/new"},
		}, 200)
		require.NoError(t, err)

		assert.Equal(t, 1, result.InsertedCount)
		assert.Equal(t, 1, result.UpdatedCount)
	})

	t.Run("skips items without title or url", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "", URL: "https://example.com/a"},
			{Title: "   ", URL: "https://example.com/b"},
			{Title: "Kept", URL: "https://example.com/c"},
		}, 100)
		require.NoError(t, err)

		assert.Equal(t, 1, result.InsertedCount)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Kept", result.Items[0].Title)
	})

	t.Run("empty batch touches nothing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		result, err := s.Upsert(ctx, "hacker-news", nil, 100)
		require.NoError(t, err)

		assert.Equal(t, 0, result.InsertedCount)
		assert.Equal(t, 0, result.UpdatedCount)
		assert.Empty(t, result.Items)
	})

	t.Run("clips long snippets", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Long", URL: "https://example.com/a", RawSnippet: strings.Repeat("a", 300)},
		}, 100)
		require.NoError(t, err)

		require.Len(t, result.Items, 1)
		snippet := result.Items[0].RawSnippet
		assert.Len(t, snippet, maltlock.MaxSnippetLength)
		assert.True(t, strings.HasSuffix(snippet, "..."))
	})

	t.Run("drops data: preview urls", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Thumb", URL: "https://example.com/a", PreviewImageURL: "data:image/gif;base64,R0lGOD"},
		}, 100)
		require.NoError(t, err)

		require.Len(t, result.Items, 1)
		assert.Empty(t, result.Items[0].PreviewImageURL)
	})

	t.Run("stores price when present", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		price := 19.99
		_, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Priced", URL: "https://example.com/a", Price: &price},
			{Title: "Free", URL: "https://example.com/b"},
		}, 100)
		require.NoError(t, err)

		items, err := s.ListBySite(ctx, "hacker-news", 0)
		require.NoError(t, err)
		require.Len(t, items, 2)

		byTitle := map[string]*maltlock.Item{}
		for _, item := range items {
			byTitle[item.Title] = item
		}
		require.NotNil(t, byTitle["Priced"].Price)
		assert.Equal(t, 19.99, *byTitle["Priced"].Price)
		assert.Nil(t, byTitle["Free"].Price)
	})
}

func TestItemService_ListBySite(t *testing.T) {
	t.Parallel()

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		_, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Old", URL: "https://example.com/old"},
		}, 100)
		require.NoError(t, err)
		_, err = s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "New", URL: "https://example.com/new"},
		}, 200)
		require.NoError(t, err)

		items, err := s.ListBySite(ctx, "hacker-news", 0)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "New", items[0].Title)
		assert.Equal(t, "Old", items[1].Title)
	})

	t.Run("does not leak across sites", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		_, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "HN", URL: "https://example.com/hn"},
		}, 100)
		require.NoError(t, err)
		_, err = s.Upsert(ctx, "devto-latest", []maltlock.ParsedItem{
			{Title: "Devto", URL: "https://example.com/devto"},
		}, 100)
		require.NoError(t, err)

		items, err := s.ListBySite(ctx, "hacker-news", 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "HN", items[0].Title)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		_, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "A", URL: "https://example.com/a"},
			{Title: "B", URL: "https://example.com/b"},
			{Title: "C", URL: "https://example.com/c"},
		}, 100)
		require.NoError(t, err)

		items, err := s.ListBySite(ctx, "hacker-news", 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("empty site returns empty slice", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)

		items, err := s.ListBySite(context.Background(), "hacker-news", 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestItemService_DeleteItem(t *testing.T) {
	t.Parallel()

	t.Run("removes only the targeted item", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)
		ctx := context.Background()

		result, err := s.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
			{Title: "Keep", URL: "https://example.com/keep"},
			{Title: "Drop", URL: "https://example.com/drop"},
		}, 100)
		require.NoError(t, err)

		var dropID string
		for _, item := range result.Items {
			if item.Title == "Drop" {
				dropID = item.ID
			}
		}
		require.NotEmpty(t, dropID)

		require.NoError(t, s.DeleteItem(ctx, dropID))

		items, err := s.ListBySite(ctx, "hacker-news", 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Keep", items[0].Title)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewItemService(db)

		assert.NoError(t, s.DeleteItem(context.Background(), "hacker-news:00000000"))
	})
}

func TestItemService_ClearAll(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	items := sqlite.NewItemService(db)
	runs := sqlite.NewCrawlRunService(db)
	ctx := context.Background()

	_, err := items.Upsert(ctx, "hacker-news", []maltlock.ParsedItem{
		{Title: "A", URL: "https://example.com/a"},
	}, 100)
	require.NoError(t, err)

	require.NoError(t, runs.SaveRun(ctx, &maltlock.CrawlRun{
		RunID:      "run-1",
		SiteID:     "hacker-news",
		StartedAt:  100,
		FinishedAt: 200,
		Status:     maltlock.RunSuccess,
		ItemCount:  1,
	}))

	require.NoError(t, items.ClearAll(ctx))

	listed, err := items.ListBySite(ctx, "hacker-news", 0)
	require.NoError(t, err)
	assert.Empty(t, listed)

	listedRuns, err := runs.ListRuns(ctx, "hacker-news", 0)
	require.NoError(t, err)
	assert.Empty(t, listedRuns)
}
