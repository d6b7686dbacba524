package regex_test

import (
	"testing"

	"github.com/rlatmfrl24/maltlock/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hnFixture = `
<table>
<tr class="athing" id="1"><td><span class="titleline"><a href="https://example.com/a">First Item</a></span></td></tr>
<tr class="athing" id="2"><td><span class="titleline"><a href="item?id=123">Second Item</a></span></td></tr>
<tr class="athing" id="3"><td><span class="titleline"><a href="https://EXAMPLE.com/a"> first item </a></span></td></tr>
</table>
`

func TestParseHackerNews(t *testing.T) {
	t.Parallel()

	items := regex.ParseHackerNews(hnFixture, "https://news.ycombinator.com/")

	require.Len(t, items, 2)

	assert.Equal(t, "First Item", items[0].Title)
	assert.Equal(t, "https://example.com/a", items[0].URL)
	assert.Equal(t, "First Item", items[0].RawSnippet)

	assert.Equal(t, "Second Item", items[1].Title)
	assert.Equal(t, "https://news.ycombinator.com/item?id=123", items[1].URL)
}

func TestParseHackerNews_DecodesTitleMarkup(t *testing.T) {
	t.Parallel()

	html := `<tr class="athing"><td><span class="titleline"><a href="https://example.com/x">Tom &amp; Jerry</a></span></td></tr>`

	items := regex.ParseHackerNews(html, "https://news.ycombinator.com/")

	require.Len(t, items, 1)
	assert.Equal(t, "Tom & Jerry", items[0].Title)
}
