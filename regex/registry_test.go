package regex_test

import (
	"testing"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Parse_UnknownID(t *testing.T) {
	t.Parallel()

	r := regex.NewRegistry()

	_, err := r.Parse("nope", "<html></html>", "https://example.com/")
	assert.Equal(t, maltlock.ENOTFOUND, maltlock.ErrorCode(err))
}

func TestRegistry_IDs(t *testing.T) {
	t.Parallel()

	r := regex.NewRegistry()

	assert.Equal(t, []string{
		"devto-latest",
		"hacker-news",
		"kissjav-most-popular-week",
		"kone-pornvideo-hot",
		"missav-weekly-views",
		"tcafe-d2001-hot-best",
		"torrentbot-topic-top20",
		"twidouga-ranking-t1",
	}, r.IDs())
}

// Every parser must return nothing, not an error or a panic, on a page
// without its markers.
func TestRegistry_Parse_UnrelatedHTML(t *testing.T) {
	t.Parallel()

	r := regex.NewRegistry()
	html := "<html><head><title>x</title></head><body><p>nothing here</p></body></html>"

	for _, id := range r.IDs() {
		id := id
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			items, err := r.Parse(id, html, "https://example.com/")
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestRegistry_Parse_EmptyHTML(t *testing.T) {
	t.Parallel()

	r := regex.NewRegistry()

	for _, id := range r.IDs() {
		id := id
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			items, err := r.Parse(id, "", "https://example.com/")
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}
