// Package goquery implements extraction techniques on top of
// PuerkitoBio/goquery CSS selection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemeta/pagemeta"
)

var _ pagemeta.Technique = (*OpenGraph)(nil)

// ogProperties maps recognized Open Graph property keys to categories.
// Each key maps to exactly one category; unrecognized keys are ignored.
var ogProperties = map[string]pagemeta.Category{
	"og:title":       pagemeta.Titles,
	"og:description": pagemeta.Descriptions,
	"og:image":       pagemeta.Images,
	"og:url":         pagemeta.URLs,
	"og:site_name":   pagemeta.Sitenames,
}

// OpenGraph extracts Open Graph metadata from meta elements carrying a
// namespaced property key (og:title, og:description, og:image, og:url,
// og:site_name). Each occurrence contributes one candidate in document
// order; no ranking beyond document order is performed.
type OpenGraph struct{}

// NewOpenGraph creates a new OpenGraph technique.
func NewOpenGraph() *OpenGraph {
	return &OpenGraph{}
}

// Name returns the technique's identifier.
func (t *OpenGraph) Name() string {
	return "opengraph"
}

// Extract scans meta elements for recognized og: properties.
func (t *OpenGraph) Extract(markup string) (pagemeta.Candidates, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	candidates := make(pagemeta.Candidates)
	doc.Find("meta[property][content]").Each(func(_ int, sel *goquery.Selection) {
		property, _ := sel.Attr("property")
		category, ok := ogProperties[strings.ToLower(strings.TrimSpace(property))]
		if !ok {
			return
		}
		content, _ := sel.Attr("content")
		candidates.Add(category, content)
	})

	return candidates, nil
}
