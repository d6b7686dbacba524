package regex_test

import (
	"testing"

	"github.com/rlatmfrl24/maltlock/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const torrentbotPageURL = "https://torrentbot230.site/top"

func TestParseTorrentbotTopicTop20(t *testing.T) {
	t.Parallel()

	html := `
<ul class="td ufl">
  <li>1</li>
  <li>12.11</li>
  <li class="tit"> <a href="/topic/520409">첫번째 토픽</a> </li>
</ul>
<ul class="td ufl">
  <li>2</li>
  <li class="tit"><a href="/topic/520410">두번째 토픽</a></li>
</ul>
`

	items := regex.ParseTorrentbotTopicTop20(html, torrentbotPageURL)

	require.Len(t, items, 2)

	assert.Equal(t, "첫번째 토픽", items[0].Title)
	assert.Equal(t, "https://torrentbot230.site/topic/520409", items[0].URL)
	assert.Equal(t, "1위 · 12.11", items[0].Summary)

	assert.Equal(t, "두번째 토픽", items[1].Title)
	assert.Equal(t, "2위", items[1].Summary)
}

func TestParseTorrentbotTopicTop20_SkipsRowsWithoutTitleLink(t *testing.T) {
	t.Parallel()

	html := `
<ul class="td ufl">
  <li>1</li>
  <li>12.11</li>
</ul>
`

	items := regex.ParseTorrentbotTopicTop20(html, torrentbotPageURL)
	assert.Empty(t, items)
}
