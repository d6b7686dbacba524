package mock

import "github.com/rlatmfrl24/maltlock"

var _ maltlock.PageInspector = (*PageInspector)(nil)

// PageInspector is a mock implementation of maltlock.PageInspector.
type PageInspector struct {
	InspectFn func(html string) (*maltlock.PageMeta, error)
}

func (i *PageInspector) Inspect(html string) (*maltlock.PageMeta, error) {
	return i.InspectFn(html)
}
