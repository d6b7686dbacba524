package regex

import (
	"regexp"
	"strings"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

var (
	// kissjavCardRegexp matches one video card and captures the anchor's
	// attribute blob and its inner HTML separately, so the title can come
	// from either the title attribute or a nested div.title.
	kissjavCardRegexp = regexp.MustCompile(
		`(?is)<div class="thumb\s+thumb_rel\s+item[^"]*".*?<a\s+([^>]*?)>(.*?)</a>.*?</div>`)

	kissjavTitleDivRegexp = regexp.MustCompile(`(?is)<div class="title"[^>]*>(.*?)</div>`)

	// Lazy-loaded thumbs put the real URL in data-original with a data: URI
	// placeholder in src.
	kissjavImageRegexp = regexp.MustCompile(`(?i)<img[^>]+(?:data-original|src)=["']([^"']+)["'][^>]*>`)
)

// ParseKissjavMostPopularWeek extracts video cards from the weekly
// most-popular grid. Anchors that do not point at /video/ paths (tags,
// pagination) are skipped.
func ParseKissjavMostPopularWeek(html, pageURL string) []maltlock.ParsedItem {
	var parsed []maltlock.ParsedItem

	for _, m := range kissjavCardRegexp.FindAllStringSubmatch(html, -1) {
		anchorAttrs, anchorInner := m[1], m[2]

		rawURL := htmltext.Attr(anchorAttrs, "href")
		if rawURL == "" || !strings.Contains(rawURL, "/video/") {
			continue
		}

		title := kissjavCardTitle(anchorAttrs, anchorInner)
		if title == "" {
			continue
		}

		parsed = append(parsed, maltlock.ParsedItem{
			Title:           title,
			URL:             htmltext.ToAbsoluteURL(rawURL, pageURL),
			PreviewImageURL: kissjavPreviewImage(anchorInner, pageURL),
		})
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}

func kissjavCardTitle(anchorAttrs, anchorInner string) string {
	if attrTitle := htmltext.Attr(anchorAttrs, "title"); attrTitle != "" {
		return htmltext.CleanText(attrTitle)
	}
	m := kissjavTitleDivRegexp.FindStringSubmatch(anchorInner)
	if m == nil {
		return ""
	}
	return htmltext.CleanText(m[1])
}

// kissjavPreviewImage returns the first non-data: image URL inside the card.
func kissjavPreviewImage(anchorInner, pageURL string) string {
	for _, m := range kissjavImageRegexp.FindAllStringSubmatch(anchorInner, -1) {
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || strings.HasPrefix(candidate, "data:") {
			continue
		}
		return htmltext.ToAbsoluteURL(candidate, pageURL)
	}
	return ""
}
