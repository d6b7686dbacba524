package regex

import (
	"regexp"
	"strings"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

var (
	torrentbotRowRegexp = regexp.MustCompile(`(?is)<ul class="td ufl">(.*?)</ul>`)

	torrentbotTitleLinkRegexp = regexp.MustCompile(
		`(?is)<li class="tit[^"]*">\s*<a href="([^"]+)">(.*?)</a>\s*</li>`)

	// Plain cells carry rank and post date in list order.
	torrentbotPlainCellRegexp = regexp.MustCompile(`(?i)<li>\s*([^<]+?)\s*</li>`)
)

// ParseTorrentbotTopicTop20 extracts the top-20 topic table. Rank and date
// come from the row's unclassed cells and are folded into the summary.
func ParseTorrentbotTopicTop20(html, pageURL string) []maltlock.ParsedItem {
	var parsed []maltlock.ParsedItem

	for _, row := range torrentbotRowRegexp.FindAllStringSubmatch(html, -1) {
		rowHTML := row[1]

		titleMatch := torrentbotTitleLinkRegexp.FindStringSubmatch(rowHTML)
		if titleMatch == nil {
			continue
		}

		rawURL := strings.TrimSpace(titleMatch[1])
		if rawURL == "" {
			continue
		}

		title := htmltext.CleanText(titleMatch[2])
		if title == "" {
			continue
		}

		var plainValues []string
		for _, cell := range torrentbotPlainCellRegexp.FindAllStringSubmatch(rowHTML, -1) {
			plainValues = append(plainValues, htmltext.CleanText(cell[1]))
		}

		var rank, date string
		if len(plainValues) > 0 {
			rank = plainValues[0]
		}
		if len(plainValues) > 1 {
			date = plainValues[1]
		}

		parsed = append(parsed, maltlock.ParsedItem{
			Title:   title,
			URL:     htmltext.ToAbsoluteURL(rawURL, pageURL),
			Summary: torrentbotSummary(rank, date),
		})
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}

func torrentbotSummary(rank, date string) string {
	var b strings.Builder
	if rank != "" {
		b.WriteString(rank + "위")
	}
	if rank != "" && date != "" {
		b.WriteString(" · ")
	}
	b.WriteString(date)
	return b.String()
}
