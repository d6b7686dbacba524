package regex

import (
	"regexp"
	"strings"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

// missavItemRegexp matches one listing card: a poster anchor with its cover
// image followed by a title anchor. The title anchor's href is the canonical
// video URL; the poster href is only a fallback.
var missavItemRegexp = regexp.MustCompile(
	`(?is)<div class="item">.*?<a href="([^"]+)" class="poster">.*?<img[^>]+src="([^"]+)"[^>]*>.*?<a href="([^"]+)" class="title">(.*?)</a>.*?</div>\s*</div>`)

// ParseMissavWeeklyViews extracts listing cards from the weekly-views sort.
// Cards whose canonical href is not a /v/ video path are skipped.
func ParseMissavWeeklyViews(html, pageURL string) []maltlock.ParsedItem {
	var parsed []maltlock.ParsedItem

	for _, m := range missavItemRegexp.FindAllStringSubmatch(html, -1) {
		posterHref, previewImageURL, titleHref, rawTitle := m[1], m[2], m[3], m[4]
		if posterHref == "" || titleHref == "" || rawTitle == "" {
			continue
		}

		canonicalHref := strings.TrimSpace(titleHref)
		if canonicalHref == "" {
			canonicalHref = strings.TrimSpace(posterHref)
		}
		if !strings.Contains(canonicalHref, "/v/") {
			continue
		}

		title := htmltext.CleanText(rawTitle)
		if title == "" {
			continue
		}

		item := maltlock.ParsedItem{
			Title: title,
			URL:   htmltext.ToAbsoluteURL(canonicalHref, pageURL),
		}
		if previewImageURL != "" {
			item.PreviewImageURL = htmltext.ToAbsoluteURL(strings.TrimSpace(previewImageURL), pageURL)
		}
		parsed = append(parsed, item)
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}
