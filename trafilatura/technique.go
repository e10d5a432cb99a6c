// Package trafilatura implements an extraction technique on top of
// go-trafilatura's metadata pipeline.
package trafilatura

import (
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pagemeta/pagemeta"
)

// Ensure Technique implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*Technique)(nil)

// Technique extracts metadata using go-trafilatura, which combines meta
// tags, JSON-LD, and content heuristics into a single opinionated reading
// of the page. Each populated metadata field contributes one candidate.
type Technique struct{}

// New creates a new Technique.
func New() *Technique {
	return &Technique{}
}

// Name returns the technique's identifier.
func (t *Technique) Name() string {
	return "trafilatura"
}

// Extract runs trafilatura over the markup and maps its metadata fields to
// categories. Tags land in the open-ended "tags" category.
func (t *Technique) Extract(markup string) (pagemeta.Candidates, error) {
	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil {
		return nil, err
	}

	metadata := result.Metadata
	candidates := make(pagemeta.Candidates)
	if metadata.Title != "" {
		candidates.Add(pagemeta.Titles, metadata.Title)
	}
	if metadata.Description != "" {
		candidates.Add(pagemeta.Descriptions, metadata.Description)
	}
	if metadata.Image != "" {
		candidates.Add(pagemeta.Images, metadata.Image)
	}
	if metadata.URL != "" {
		candidates.Add(pagemeta.URLs, metadata.URL)
	}
	if metadata.Sitename != "" {
		candidates.Add(pagemeta.Sitenames, metadata.Sitename)
	}
	if metadata.Author != "" {
		candidates.Add(pagemeta.Authors, metadata.Author)
	}
	if !metadata.Date.IsZero() {
		candidates.Add(pagemeta.Dates, metadata.Date.UTC().Format(time.RFC3339))
	}
	for _, tag := range metadata.Tags {
		if tag != "" {
			candidates.Add(pagemeta.Category("tags"), tag)
		}
	}

	return candidates, nil
}
