package maltlock

// Parser extracts listing items from one site's raw HTML. Parsers are pure
// functions: they never fail, they return an empty slice when nothing
// matches, and they silently drop malformed individual blocks.
type Parser func(html, pageURL string) []ParsedItem

// ParserRegistry dispatches a parser ID to a site parser. The registry is
// built once at startup and never mutated; dispatching an unregistered ID
// fails with ENOTFOUND and never falls back to a default parser.
type ParserRegistry interface {
	// Parse runs the parser registered for parserID against the page HTML.
	Parse(parserID, html, pageURL string) ([]ParsedItem, error)

	// IDs returns the registered parser IDs in sorted order.
	IDs() []string
}
