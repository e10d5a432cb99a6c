package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemeta/pagemeta"
)

var _ pagemeta.Technique = (*TwitterCard)(nil)

// twitterKeys maps recognized Twitter Card keys to categories.
var twitterKeys = map[string]pagemeta.Category{
	"twitter:title":       pagemeta.Titles,
	"twitter:description": pagemeta.Descriptions,
	"twitter:image":       pagemeta.Images,
	"twitter:image:src":   pagemeta.Images,
	"twitter:url":         pagemeta.URLs,
	"twitter:site":        pagemeta.Sitenames,
}

// TwitterCard extracts Twitter Card metadata from meta elements. Cards use
// the name attribute by convention, but many sites emit property instead,
// so both are recognized.
type TwitterCard struct{}

// NewTwitterCard creates a new TwitterCard technique.
func NewTwitterCard() *TwitterCard {
	return &TwitterCard{}
}

// Name returns the technique's identifier.
func (t *TwitterCard) Name() string {
	return "twittercard"
}

// Extract scans meta elements for recognized twitter: keys in document order.
func (t *TwitterCard) Extract(markup string) (pagemeta.Candidates, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	candidates := make(pagemeta.Candidates)
	doc.Find("meta[content]").Each(func(_ int, sel *goquery.Selection) {
		key, exists := sel.Attr("name")
		if !exists {
			key, exists = sel.Attr("property")
		}
		if !exists {
			return
		}
		category, ok := twitterKeys[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			return
		}
		content, _ := sel.Attr("content")
		candidates.Add(category, content)
	})

	return candidates, nil
}
