package maltlock

import (
	"net/url"
	"regexp"
	"strings"
)

// TargetSite describes one crawl target: where its listing page lives, which
// tab/page URLs count as that site, and which parser understands its markup.
type TargetSite struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	MatchPatterns []string `json:"matchPatterns"`
	ParserID      string   `json:"parserId"`
}

// TargetSites is the static crawl target catalog. Site IDs are disjoint
// storage namespaces; the catalog is never mutated at runtime.
var TargetSites = []TargetSite{
	{
		ID:            "hacker-news",
		Name:          "Hacker News",
		URL:           "https://news.ycombinator.com/",
		MatchPatterns: []string{"https://news.ycombinator.com/*"},
		ParserID:      "hacker-news",
	},
	{
		ID:            "devto-latest",
		Name:          "DEV Community",
		URL:           "https://dev.to/latest",
		MatchPatterns: []string{"https://dev.to/*"},
		ParserID:      "devto-latest",
	},
	{
		ID:            "kissjav-most-popular-week",
		Name:          "KissJAV",
		URL:           "https://kissjav.com/most-popular/?sort_by=video_viewed_week",
		MatchPatterns: []string{"https://kissjav.com/*"},
		ParserID:      "kissjav-most-popular-week",
	},
	{
		ID:            "missav-weekly-views",
		Name:          "MissAV",
		URL:           "https://missav123.to/ko/all?sort=weekly_views",
		MatchPatterns: []string{"https://missav123.to/*"},
		ParserID:      "missav-weekly-views",
	},
	{
		ID:            "twidouga-ranking-t1",
		Name:          "TwiDouga",
		URL:           "https://www.twidouga.net/ko/ranking_t1.php",
		MatchPatterns: []string{"https://www.twidouga.net/*"},
		ParserID:      "twidouga-ranking-t1",
	},
	{
		ID:            "torrentbot-topic-top20",
		Name:          "TorrentBot",
		URL:           "https://torrentbot230.site/topic/index?top=20",
		MatchPatterns: []string{"https://torrentbot230.site/*"},
		ParserID:      "torrentbot-topic-top20",
	},
	{
		ID:            "kone-pornvideo-hot",
		Name:          "Kone",
		URL:           "https://kone.gg/s/pornvideo?mode=hot",
		MatchPatterns: []string{"https://kone.gg/*"},
		ParserID:      "kone-pornvideo-hot",
	},
	{
		ID:            "tcafe-d2001-hot-best",
		Name:          "Tcafe",
		URL:           "https://tcafe21.com/bbs/board.php?bo_table=D2001",
		MatchPatterns: []string{"https://tcafe21.com/*"},
		ParserID:      "tcafe-d2001-hot-best",
	},
}

// SiteByID looks up a target site in the catalog.
// Returns ENOTFOUND for an unknown ID.
func SiteByID(siteID string) (TargetSite, error) {
	for _, site := range TargetSites {
		if site.ID == siteID {
			return site, nil
		}
	}
	return TargetSite{}, Errorf(ENOTFOUND, "unknown site ID %q", siteID)
}

// patternRegexps holds match patterns compiled once at startup.
var patternRegexps = compileMatchPatterns()

func compileMatchPatterns() map[string]*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp)
	for _, site := range TargetSites {
		for _, pattern := range site.MatchPatterns {
			if _, ok := compiled[pattern]; ok {
				continue
			}
			escaped := strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, ".*")
			compiled[pattern] = regexp.MustCompile("^" + escaped + "$")
		}
	}
	return compiled
}

// SiteMatchesURL reports whether a page URL belongs to the site, either by
// sharing an origin with the site's configured listing URL or by matching one
// of its wildcard match patterns.
func SiteMatchesURL(site TargetSite, pageURL string) bool {
	if sameOrigin(site.URL, pageURL) {
		return true
	}
	for _, pattern := range site.MatchPatterns {
		if re, ok := patternRegexps[pattern]; ok && re.MatchString(pageURL) {
			return true
		}
	}
	return false
}

func sameOrigin(first, second string) bool {
	a, err := url.Parse(first)
	if err != nil {
		return false
	}
	b, err := url.Parse(second)
	if err != nil {
		return false
	}
	return a.Scheme != "" && a.Scheme == b.Scheme && a.Host == b.Host
}
