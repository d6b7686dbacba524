package htmltext

import (
	"fmt"
	"regexp"
)

// WindowBefore returns the slice of s covering up to n bytes before the
// [start, end) span plus the span itself. Bounds are clamped, so any span is
// safe to pass. Used when a secondary field (rank badge, profile link,
// preview image) precedes the primary match in list order.
func WindowBefore(s string, start, end, n int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if end < start {
		end = start
	}
	from := start - n
	if from < 0 {
		from = 0
	}
	return s[from:end]
}

// WindowAfter returns the slice of s starting at start, up to n bytes long.
func WindowAfter(s string, start, n int) string {
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		start = len(s)
	}
	to := start + n
	if to > len(s) {
		to = len(s)
	}
	return s[start:to]
}

// LastSubmatch returns the first capture group of the last match of re in s,
// or "" when there is no match. Within a context window the last match is
// preferred because markers precede the content they annotate, so a later
// marker is closer to the current item.
func LastSubmatch(re *regexp.Regexp, s string) string {
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}

// Attr extracts the value of a quoted attribute from a fragment of tag
// markup, tolerating either quote style. Returns "" when absent.
func Attr(s, name string) string {
	re := regexp.MustCompile(fmt.Sprintf(`(?i)%s=["']([^"']+)["']`, regexp.QuoteMeta(name)))
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
