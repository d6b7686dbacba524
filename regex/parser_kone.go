package regex

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/htmltext"
)

var (
	// konePackedArticleRegexp matches one article entry of the packed
	// JSON-like payload the site embeds in a script block: id, an escaped
	// title literal, and the preview URL of entries that carry media.
	konePackedArticleRegexp = regexp.MustCompile(
		`(?s)"id":\{"__t":"u","v":"([^"]+)"\},"title":"((?:\\.|[^"\\])*)".*?"preview":"([^"]+?)","has_media":true`)

	koneAnchorTagRegexp = regexp.MustCompile(`(?i)<a\b[^>]*>`)

	// Card preview images are the crossorigin thumbnails; alt text mirrors
	// the article title, which links images to anchors when the image is not
	// inside the anchor's context window.
	konePreviewImageRegexp = regexp.MustCompile(
		`(?i)<img[^>]+crossorigin="anonymous"[^>]+src="([^"]+)"[^>]*alt="([^"]+)"[^>]*>`)
	koneContextPreviewRegexp = regexp.MustCompile(
		`(?i)<img[^>]+crossorigin="anonymous"[^>]+src="([^"]+)"[^>]*>`)

	koneArticlePathRegexp = regexp.MustCompile(`(?i)^/?s/[^/?#]+/[^/?#]+`)
	koneSchemeHostRegexp  = regexp.MustCompile(`(?i)^https?://[^/]+`)
	koneSubPathRegexp     = regexp.MustCompile(`^/s/([^/?#]+)`)
	koneArticleURLRegexp  = regexp.MustCompile(`^/s/([^/?#]+)/([^/?#]+)`)

	koneAttrRegexps = map[string]*regexp.Regexp{
		"title": regexp.MustCompile(`(?i)title="([^"]*)"`),
		"href":  regexp.MustCompile(`(?i)href="([^"]*)"`),
	}
)

const koneRowContextWindow = 4000

// ParseKonePornvideoHot extracts the hot listing. DOM-card extraction runs
// first; when the server rendered no cards, the packed script payload is
// scanned instead.
func ParseKonePornvideoHot(html, pageURL string) []maltlock.ParsedItem {
	if items := koneParseDomCards(html, pageURL); len(items) > 0 {
		return items
	}
	if items := koneParsePackedPayload(html, pageURL); len(items) > 0 {
		return items
	}
	return nil
}

func koneAttr(tagHTML, name string) string {
	m := koneAttrRegexps[name].FindStringSubmatch(tagHTML)
	if m == nil {
		return ""
	}
	return m[1]
}

func koneParseDomCards(html, pageURL string) []maltlock.ParsedItem {
	// Preview fallback: first thumbnail per normalized alt text.
	previewByTitle := make(map[string]string)
	for _, m := range konePreviewImageRegexp.FindAllStringSubmatch(html, -1) {
		rawPreviewURL := strings.TrimSpace(m[1])
		rawAlt := m[2]
		if rawPreviewURL == "" || rawAlt == "" {
			continue
		}
		normalizedTitle := strings.ToLower(htmltext.CleanText(htmltext.DecodeEntities(rawAlt)))
		if normalizedTitle == "" {
			continue
		}
		if _, ok := previewByTitle[normalizedTitle]; ok {
			continue
		}
		previewByTitle[normalizedTitle] = htmltext.ToAbsoluteURL(rawPreviewURL, pageURL)
	}

	var parsed []maltlock.ParsedItem

	for _, loc := range koneAnchorTagRegexp.FindAllStringIndex(html, -1) {
		anchorTagHTML := html[loc[0]:loc[1]]
		rawTitle := koneAttr(anchorTagHTML, "title")
		rawHref := koneAttr(anchorTagHTML, "href")
		if rawTitle == "" || rawHref == "" {
			continue
		}

		href := htmltext.DecodeEntities(rawHref)
		if !koneArticlePathRegexp.MatchString(koneSchemeHostRegexp.ReplaceAllString(href, "")) {
			continue
		}

		title := htmltext.CleanText(htmltext.DecodeEntities(rawTitle))
		if title == "" {
			continue
		}

		previewImageURL := ""
		rowContext := htmltext.WindowAfter(html, loc[0], koneRowContextWindow)
		if m := koneContextPreviewRegexp.FindStringSubmatch(rowContext); m != nil {
			if rowPreview := strings.TrimSpace(m[1]); rowPreview != "" {
				previewImageURL = htmltext.ToAbsoluteURL(rowPreview, pageURL)
			}
		}
		if previewImageURL == "" {
			previewImageURL = previewByTitle[strings.ToLower(title)]
		}
		if previewImageURL == "" {
			continue
		}

		parsed = append(parsed, maltlock.ParsedItem{
			Title:           title,
			URL:             koneNormalizeArticleURL(href, pageURL),
			PreviewImageURL: previewImageURL,
		})
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}

func koneParsePackedPayload(html, pageURL string) []maltlock.ParsedItem {
	var parsed []maltlock.ParsedItem
	subHandle := koneSubHandle(pageURL)

	for _, m := range konePackedArticleRegexp.FindAllStringSubmatch(html, -1) {
		articleID := strings.TrimSpace(m[1])
		rawTitle := m[2]
		rawPreviewURL := strings.TrimSpace(m[3])
		if articleID == "" || rawTitle == "" || rawPreviewURL == "" {
			continue
		}

		title := htmltext.CleanText(koneDecodePackedString(rawTitle))
		if title == "" {
			continue
		}

		parsed = append(parsed, maltlock.ParsedItem{
			Title:           title,
			URL:             koneBuildArticleURL(pageURL, subHandle, articleID),
			PreviewImageURL: htmltext.ToAbsoluteURL(rawPreviewURL, pageURL),
		})
	}

	return maltlock.DedupeByKey(parsed, maltlock.DedupKeepFirst)
}

// koneDecodePackedString resolves the backslash escapes of a packed string
// literal. Undecodable input is returned as-is.
func koneDecodePackedString(s string) string {
	quoted := `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	var decoded string
	if err := json.Unmarshal([]byte(quoted), &decoded); err != nil {
		return s
	}
	return decoded
}

// koneSubHandle extracts the community handle from the page URL path,
// defaulting to "pornvideo".
func koneSubHandle(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "pornvideo"
	}
	if m := koneSubPathRegexp.FindStringSubmatch(u.Path); m != nil {
		return m[1]
	}
	return "pornvideo"
}

func koneMode(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("mode")
}

// koneBuildArticleURL synthesizes an article URL from the path template,
// preserving the page's mode filter.
func koneBuildArticleURL(pageURL, subHandle, articleID string) string {
	base, err := url.Parse(pageURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "https://kone.gg/s/" + subHandle + "/" + articleID
	}
	u := base.ResolveReference(&url.URL{Path: "/s/" + subHandle + "/" + articleID})
	if mode := koneMode(pageURL); mode != "" {
		q := u.Query()
		q.Set("mode", mode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// koneNormalizeArticleURL canonicalizes an article href: the path is reduced
// to /s/<sub>/<id> and every query parameter except the mode filter
// (pagination in particular) is dropped.
func koneNormalizeArticleURL(rawHref, pageURL string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return htmltext.ToAbsoluteURL(rawHref, pageURL)
	}
	ref, err := url.Parse(rawHref)
	if err != nil {
		return htmltext.ToAbsoluteURL(rawHref, pageURL)
	}
	u := base.ResolveReference(ref)

	m := koneArticleURLRegexp.FindStringSubmatch(u.Path)
	if m == nil {
		return u.String()
	}

	normalized := base.ResolveReference(&url.URL{Path: "/s/" + m[1] + "/" + m[2]})
	mode := u.Query().Get("mode")
	if mode == "" {
		mode = koneMode(pageURL)
	}
	if mode != "" {
		q := normalized.Query()
		q.Set("mode", mode)
		normalized.RawQuery = q.Encode()
	}
	return normalized.String()
}
