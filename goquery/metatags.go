package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemeta/pagemeta"
)

var _ pagemeta.Technique = (*MetaTags)(nil)

// MetaTags extracts metadata from the standard, pre-Open-Graph document
// vocabulary: the title element, description and author meta tags, and
// canonical and image_src link relations.
type MetaTags struct{}

// NewMetaTags creates a new MetaTags technique.
func NewMetaTags() *MetaTags {
	return &MetaTags{}
}

// Name returns the technique's identifier.
func (t *MetaTags) Name() string {
	return "metatags"
}

// Extract scans head elements in document order. Empty values are skipped:
// an empty title element or a description tag with no content proposes
// nothing rather than an empty candidate.
func (t *MetaTags) Extract(markup string) (pagemeta.Candidates, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	candidates := make(pagemeta.Candidates)

	doc.Find("title").Each(func(_ int, sel *goquery.Selection) {
		if title := strings.TrimSpace(sel.Text()); title != "" {
			candidates.Add(pagemeta.Titles, title)
		}
	})

	doc.Find(`meta[name="description"][content]`).Each(func(_ int, sel *goquery.Selection) {
		if content, _ := sel.Attr("content"); strings.TrimSpace(content) != "" {
			candidates.Add(pagemeta.Descriptions, content)
		}
	})

	doc.Find(`meta[name="author"][content]`).Each(func(_ int, sel *goquery.Selection) {
		if content, _ := sel.Attr("content"); strings.TrimSpace(content) != "" {
			candidates.Add(pagemeta.Authors, content)
		}
	})

	doc.Find(`link[rel="canonical"][href]`).Each(func(_ int, sel *goquery.Selection) {
		if href, _ := sel.Attr("href"); strings.TrimSpace(href) != "" {
			candidates.Add(pagemeta.URLs, href)
		}
	})

	doc.Find(`link[rel="image_src"][href]`).Each(func(_ int, sel *goquery.Selection) {
		if href, _ := sel.Attr("href"); strings.TrimSpace(href) != "" {
			candidates.Add(pagemeta.Images, href)
		}
	})

	return candidates, nil
}
