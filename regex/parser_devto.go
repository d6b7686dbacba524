package regex

import (
	"regexp"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

var (
	// devtoArticleLinkRegexp matches the id="article-link-..." anchors of the
	// article feed.
	devtoArticleLinkRegexp = regexp.MustCompile(
		`(?s)<a[^>]*id=["']article-link-[^"']+["'][^>]*href=["']([^"']+)["'][^>]*>(.*?)</a>`)

	// devtoHeadingLinkRegexp is the looser fallback: any heading-wrapped link.
	devtoHeadingLinkRegexp = regexp.MustCompile(
		`(?s)<h2[^>]*>.*?<a[^>]*href=["']([^"']+)["'][^>]*>(.*?)</a>.*?</h2>`)
)

// ParseDevtoLatest extracts articles from the dev.to latest feed. When the
// article-link pattern yields nothing (markup variant without ids), it
// retries with generic heading-wrapped links before giving up.
func ParseDevtoLatest(html, pageURL string) []maltlock.ParsedItem {
	parsed := collectAnchorItems(devtoArticleLinkRegexp, html, pageURL)

	if len(parsed) == 0 {
		parsed = collectAnchorItems(devtoHeadingLinkRegexp, html, pageURL)
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}

// collectAnchorItems turns (href, inner HTML) capture pairs into items,
// skipping blocks with a missing href or an empty cleaned title.
func collectAnchorItems(re *regexp.Regexp, html, pageURL string) []maltlock.ParsedItem {
	var parsed []maltlock.ParsedItem

	for _, m := range re.FindAllStringSubmatch(html, -1) {
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

	return parsed
}
