// Package htmltext provides the text normalization primitives shared by all
// site parsers: tag stripping, entity decoding, whitespace collapsing, URL
// resolution, and length clipping, plus bounded context-window helpers for
// scanning raw HTML around a match.
package htmltext

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var tagRegexp = regexp.MustCompile(`<[^>]+>`)

// StripTags removes <...> markup, replacing each tag with a single space so
// that adjacent text nodes stay separated.
func StripTags(s string) string {
	return tagRegexp.ReplaceAllString(s, " ")
}

// DecodeEntities decodes HTML character references. Strings that are not
// valid entities pass through unchanged.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// NormalizeWhitespace collapses any run of whitespace to a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanText is the canonical "visible text from an HTML fragment" operation:
// strip tags, decode entities, collapse whitespace.
func CleanText(s string) string {
	return NormalizeWhitespace(DecodeEntities(StripTags(s)))
}

// ToAbsoluteURL resolves raw against pageURL. Malformed input is returned
// unchanged; parsers must tolerate garbage hrefs without failing.
func ToAbsoluteURL(raw, pageURL string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}

// ClipText returns s unchanged when it fits in limit runes, otherwise the
// first limit-3 runes plus "...".
func ClipText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
