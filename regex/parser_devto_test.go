package regex_test

import (
	"testing"

	"github.com/rlatmfrl24/maltlock/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDevtoLatest(t *testing.T) {
	t.Parallel()

	html := `
<div class="crayons-story">
  <a id="article-link-100" href="/alice/post-one"><h2>Post One</h2></a>
</div>
<div class="crayons-story">
  <a id="article-link-200" href="/bob/post-two"><h2>Post Two</h2></a>
</div>
`

	items := regex.ParseDevtoLatest(html, "https://dev.to/latest")

	require.Len(t, items, 2)
	assert.Equal(t, "Post One", items[0].Title)
	assert.Equal(t, "https://dev.to/alice/post-one", items[0].URL)
	assert.Equal(t, "Post Two", items[1].Title)
	assert.Equal(t, "https://dev.to/bob/post-two", items[1].URL)
}

func TestParseDevtoLatest_HeadingFallback(t *testing.T) {
	t.Parallel()

	html := `
<article>
  <h2 class="title"><a href="/carol/post-three">Post Three</a></h2>
</article>
`

	items := regex.ParseDevtoLatest(html, "https://dev.to/latest")

	require.Len(t, items, 1)
	assert.Equal(t, "Post Three", items[0].Title)
	assert.Equal(t, "https://dev.to/carol/post-three", items[0].URL)
}
