// Package readability implements an extraction technique on top of
// go-shiori/go-readability.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/pagemeta/pagemeta"
)

// Ensure Technique implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*Technique)(nil)

// Technique extracts metadata using go-readability's article parser. Its
// candidates come from the parsed article: title, excerpt as description,
// lead image, byline as author, and site name.
type Technique struct{}

// New creates a new Technique.
func New() *Technique {
	return &Technique{}
}

// Name returns the technique's identifier.
func (t *Technique) Name() string {
	return "readability"
}

// Extract parses the markup as an article and maps the populated article
// fields to categories.
func (t *Technique) Extract(markup string) (pagemeta.Candidates, error) {
	article, err := readability.FromReader(strings.NewReader(markup), nil)
	if err != nil {
		return nil, err
	}

	candidates := make(pagemeta.Candidates)
	if article.Title != "" {
		candidates.Add(pagemeta.Titles, article.Title)
	}
	if article.Excerpt != "" {
		candidates.Add(pagemeta.Descriptions, article.Excerpt)
	}
	if article.Image != "" {
		candidates.Add(pagemeta.Images, article.Image)
	}
	if article.Byline != "" {
		candidates.Add(pagemeta.Authors, article.Byline)
	}
	if article.SiteName != "" {
		candidates.Add(pagemeta.Sitenames, article.SiteName)
	}

	return candidates, nil
}
