package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rlatmfrl24/maltlock"
	main "github.com/rlatmfrl24/maltlock/cmd/maltlock"
	"github.com/rlatmfrl24/maltlock/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists items with ID, title, and URL", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			ListBySiteFn: func(_ context.Context, siteID string, limit int) ([]*maltlock.Item, error) {
				assert.Equal(t, "hacker-news", siteID)
				assert.Equal(t, 20, limit)
				return []*maltlock.Item{
					{
						ID:         "hacker-news:0a1b2c3d",
						SiteID:     "hacker-news",
						Title:      "Show HN: Something",
						URL:        "https://example.com/show",
						CapturedAt: 1700000000000,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Items:  items,
		}

		cmd := &main.ItemsCmd{Site: "hacker-news", Limit: 20}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "hacker-news:0a1b2c3d")
		assert.Contains(t, output, "Show HN: Something")
		assert.Contains(t, output, "https://example.com/show")
	})

	t.Run("full output includes summary and preview", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			ListBySiteFn: func(_ context.Context, _ string, _ int) ([]*maltlock.Item, error) {
				return []*maltlock.Item{
					{
						ID:              "site:1",
						Title:           "Titled",
						URL:             "https://example.com/a",
						Summary:         "1위 · 12.11",
						PreviewImageURL: "https://example.com/a.jpg",
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Items:  items,
		}

		cmd := &main.ItemsCmd{Site: "site", Limit: 20, Full: true}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "1위 · 12.11")
		assert.Contains(t, output, "https://example.com/a.jpg")
	})

	t.Run("shows helpful message when no items stored", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			ListBySiteFn: func(_ context.Context, _ string, _ int) ([]*maltlock.Item, error) {
				return []*maltlock.Item{}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Items:  items,
		}

		cmd := &main.ItemsCmd{Site: "hacker-news", Limit: 20}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No items stored")
	})
}
