package regex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

var (
	// twidougaVideoAnchorRegexp matches the "video URL" anchor of one ranking
	// entry in any of the site's language variants.
	twidougaVideoAnchorRegexp = regexp.MustCompile(
		`(?i)<a\s+[^>]*href=["'](https?://video\.twimg\.com/[^"']+)["'][^>]*>\s*(?:동영상\s*URL|동영상URL|動画\s*URL|動画URL|Video\s*URL|VideoURL)\s*</a\s*>`)

	// Secondary fields are not co-located with the anchor; they are found by
	// scanning the window of HTML before it. Badges precede the content they
	// annotate, so the last match in the window belongs to the current entry.
	twidougaRankRegexp    = regexp.MustCompile(`(?i)<img\s+[^>]*src=["'][^"']*rank\d+\.png["'][^>]*>\s*(\d+)\s*위`)
	twidougaXLinkRegexp   = regexp.MustCompile(`(?i)href=["'](https?://x\.com/[^"']+)["']`)
	twidougaPreviewRegexp = regexp.MustCompile(`(?i)<img\s+[^>]*src=["'](https?://pbs\.twimg\.com/[^"']+)["'][^>]*>`)
)

const twidougaContextWindow = 5000

// ParseTwidougaRankingT1 extracts the realtime video ranking. Each entry is
// anchored on its video URL link; rank number, source profile link, and
// preview image are recovered from a bounded window before the anchor.
func ParseTwidougaRankingT1(html, pageURL string) []maltlock.ParsedItem {
	normalized := strings.ReplaceAll(html, "\r\n", "\n")
	var parsed []maltlock.ParsedItem

	entryIndex := 0
	for _, loc := range twidougaVideoAnchorRegexp.FindAllStringSubmatchIndex(normalized, -1) {
		entryIndex++

		videoURL := strings.TrimSpace(normalized[loc[2]:loc[3]])
		if videoURL == "" {
			continue
		}

		context := htmltext.WindowBefore(normalized, loc[0], loc[1], twidougaContextWindow)

		rank := htmltext.LastSubmatch(twidougaRankRegexp, context)
		if rank == "" {
			rank = strconv.Itoa(entryIndex)
		}
		tweetURL := strings.TrimSpace(htmltext.LastSubmatch(twidougaXLinkRegexp, context))
		previewImageURL := strings.TrimSpace(htmltext.LastSubmatch(twidougaPreviewRegexp, context))

		item := maltlock.ParsedItem{
			Title:   twidougaTitle(rank, tweetURL, videoURL),
			URL:     htmltext.ToAbsoluteURL(videoURL, pageURL),
			Summary: tweetURL,
		}
		if previewImageURL != "" {
			item.PreviewImageURL = htmltext.ToAbsoluteURL(previewImageURL, pageURL)
		}
		parsed = append(parsed, item)
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}

// twidougaTitle labels an entry by rank and its source, preferring the tweet
// URL over the bare video URL. The site has no textual titles.
func twidougaTitle(rank, tweetURL, videoURL string) string {
	if tweetURL != "" {
		return rank + "위 - " + tweetURL
	}
	return rank + "위 - " + videoURL
}
