package maltlock

// PageMeta holds metadata probed from a fetched page, recorded on crawl runs
// for auditing.
type PageMeta struct {
	Title     string
	LinkCount int
}

// PageInspector extracts metadata from raw page HTML.
type PageInspector interface {
	Inspect(html string) (*PageMeta, error)
}
