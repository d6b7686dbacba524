package regex

import (
	"regexp"
	"strings"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

var (
	// tcafeHotSectionRegexp captures a hot-board section heading and the post
	// list that follows it. Only the daily/weekly best sections are kept.
	tcafeHotSectionRegexp = regexp.MustCompile(
		`(?is)<div class="board-hot-title">(.*?)</div>\s*<div class="miso-post-list">.*?<ul class="post-list">(.*?)</ul>`)

	tcafeHotRowRegexp = regexp.MustCompile(
		`(?is)<li class="post-row">.*?<a href="([^"]+)"[^>]*>(.*?)</a>\s*</li>`)

	tcafeCommentCountRegexp = regexp.MustCompile(`(?i)<span class="count[^"]*">\s*\+?(\d+)\s*</span>`)

	// Rows prefix the title with their comment badge, e.g. "+9 제목".
	tcafeLeadingCountRegexp = regexp.MustCompile(`^\+\d+\s*`)
)

// ParseTcafeD2001HotBest extracts the daily and weekly best posts from the
// board's hot section, labelling each item with its section and comment count.
func ParseTcafeD2001HotBest(html, pageURL string) []maltlock.ParsedItem {
	var parsed []maltlock.ParsedItem

	for _, section := range tcafeHotSectionRegexp.FindAllStringSubmatch(html, -1) {
		sectionLabel := tcafeSectionLabel(section[1])
		if sectionLabel == "" {
			continue
		}

		for _, row := range tcafeHotRowRegexp.FindAllStringSubmatch(section[2], -1) {
			rawURL := strings.TrimSpace(row[1])
			rowAnchorHTML := row[2]
			title := tcafeRowTitle(rowAnchorHTML)

			if rawURL == "" || title == "" {
				continue
			}

			canonicalURL := htmltext.DecodeEntities(rawURL)

			summary := sectionLabel
			if m := tcafeCommentCountRegexp.FindStringSubmatch(rowAnchorHTML); m != nil {
				summary = sectionLabel + " · 댓글 +" + m[1]
			}

			parsed = append(parsed, maltlock.ParsedItem{
				Title:   title,
				URL:     htmltext.ToAbsoluteURL(canonicalURL, pageURL),
				Summary: summary,
			})
		}
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}

// tcafeSectionLabel maps a hot section heading to its label, or "" for
// sections that are not part of the daily/weekly best contract.
func tcafeSectionLabel(rawTitleHTML string) string {
	title := htmltext.CleanText(rawTitleHTML)

	if strings.Contains(title, "오늘의 베스트") {
		return "일간 베스트"
	}
	if strings.Contains(title, "주간 베스트") {
		return "주간 베스트"
	}
	return ""
}

func tcafeRowTitle(rawAnchorHTML string) string {
	cleaned := htmltext.CleanText(rawAnchorHTML)
	return strings.TrimSpace(tcafeLeadingCountRegexp.ReplaceAllString(cleaned, ""))
}
