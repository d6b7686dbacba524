// Package goquery provides a DOM-based page metadata probe used to enrich
// crawl audit records. Extraction itself stays pattern-based; the probe only
// reads document-level metadata that does not feed item identity.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rlatmfrl24/maltlock"
)

// Ensure Inspector implements maltlock.PageInspector at compile time.
var _ maltlock.PageInspector = (*Inspector)(nil)

// Inspector extracts page metadata from raw HTML.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses the document and returns its title and anchor count.
func (i *Inspector) Inspect(html string) (*maltlock.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, maltlock.Errorf(maltlock.EINVALID, "failed to parse HTML: %v", err)
	}

	return &maltlock.PageMeta{
		Title:     strings.TrimSpace(doc.Find("title").First().Text()),
		LinkCount: doc.Find("a[href]").Length(),
	}, nil
}
