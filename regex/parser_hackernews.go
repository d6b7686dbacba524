package regex

import (
	"regexp"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

// hnItemRegexp matches a story row: a tr.athing containing a titleline span
// whose anchor carries the story href and title.
var hnItemRegexp = regexp.MustCompile(
	`(?s)<tr class=["']athing["'].*?<span class=["']titleline["'][^>]*>\s*<a[^>]*href=["']([^"']+)["'][^>]*>(.*?)</a>`)

// ParseHackerNews extracts front-page stories from Hacker News.
func ParseHackerNews(html, pageURL string) []maltlock.ParsedItem {
	var parsed []maltlock.ParsedItem

	for _, m := range hnItemRegexp.FindAllStringSubmatch(html, -1) {
		rawURL, rawTitle := m[1], m[2]
		if rawURL == "" || rawTitle == "" {
			continue
		}

		title := htmltext.CleanText(rawTitle)
		if title == "" {
			continue
		}

		parsed = append(parsed, maltlock.ParsedItem{
			Title:      title,
			URL:        htmltext.ToAbsoluteURL(rawURL, pageURL),
			RawSnippet: title,
		})
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}
