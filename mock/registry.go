package mock

import "github.com/rlatmfrl24/maltlock"

var _ maltlock.ParserRegistry = (*ParserRegistry)(nil)

// ParserRegistry is a mock implementation of maltlock.ParserRegistry.
type ParserRegistry struct {
	ParseFn func(parserID, html, pageURL string) ([]maltlock.ParsedItem, error)
	IDsFn   func() []string
}

func (r *ParserRegistry) Parse(parserID, html, pageURL string) ([]maltlock.ParsedItem, error) {
	return r.ParseFn(parserID, html, pageURL)
}

func (r *ParserRegistry) IDs() []string {
	return r.IDsFn()
}
