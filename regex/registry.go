// Package regex implements the site parsers as compiled-regexp pattern scans
// over raw HTML, plus the static registry that dispatches parser IDs to them.
// The patterns are contract: each parser's output (title text, canonical URL
// form, preview presence) is pinned by tests against saved page shapes.
package regex

import (
	"sort"

	"github.com/rlatmfrl24/maltlock"
)

var _ maltlock.ParserRegistry = (*Registry)(nil)

// Registry maps parser IDs to site parsers. It is populated once in
// NewRegistry and read-only afterwards; there is no runtime registration.
type Registry struct {
	parsers map[string]maltlock.Parser
}

// NewRegistry builds the registry with every known site parser.
func NewRegistry() *Registry {
	return &Registry{parsers: map[string]maltlock.Parser{
		"hacker-news":               ParseHackerNews,
		"devto-latest":              ParseDevtoLatest,
		"kissjav-most-popular-week": ParseKissjavMostPopularWeek,
		"missav-weekly-views":       ParseMissavWeeklyViews,
		"twidouga-ranking-t1":       ParseTwidougaRankingT1,
		"torrentbot-topic-top20":    ParseTorrentbotTopicTop20,
		"kone-pornvideo-hot":        ParseKonePornvideoHot,
		"tcafe-d2001-hot-best":      ParseTcafeD2001HotBest,
	}}
}

// Parse dispatches to the parser registered for parserID.
// Returns ENOTFOUND for an unknown ID; it never falls back to a default.
func (r *Registry) Parse(parserID, html, pageURL string) ([]maltlock.ParsedItem, error) {
	parser, ok := r.parsers[parserID]
	if !ok {
		return nil, maltlock.Errorf(maltlock.ENOTFOUND, "unknown parser ID %q", parserID)
	}
	return parser(html, pageURL), nil
}

// IDs returns the registered parser IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.parsers))
	for id := range r.parsers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
