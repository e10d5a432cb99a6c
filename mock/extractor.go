package mock

import "github.com/pagemeta/pagemeta"

var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemeta.Extractor.
type Extractor struct {
	ExtractFn func(markup string, sourceURL string) (*pagemeta.Result, error)
}

func (e *Extractor) Extract(markup string, sourceURL string) (*pagemeta.Result, error) {
	return e.ExtractFn(markup, sourceURL)
}
