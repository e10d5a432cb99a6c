package goquery

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/pagemeta/pagemeta"
)

var _ pagemeta.Technique = (*JSONLD)(nil)

// JSONLD extracts metadata from JSON-LD blocks (script elements typed
// application/ld+json). Recognized schema.org fields: headline and name map
// to titles, description to descriptions, image to images, url to urls,
// author to authors, and datePublished/dateModified to dates. Date values
// are normalized to RFC 3339 when they can be parsed.
type JSONLD struct{}

// NewJSONLD creates a new JSONLD technique.
func NewJSONLD() *JSONLD {
	return &JSONLD{}
}

// Name returns the technique's identifier.
func (t *JSONLD) Name() string {
	return "jsonld"
}

// Extract scans JSON-LD script blocks in document order. A block that is not
// valid JSON proposes nothing; the remaining blocks still contribute.
func (t *JSONLD) Extract(markup string) (pagemeta.Candidates, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	candidates := make(pagemeta.Candidates)
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(sel.Text()), &payload); err != nil {
			return
		}
		collectNode(candidates, payload)
	})

	return candidates, nil
}

// collectNode walks a decoded JSON-LD value, which may be a single object or
// an array of objects.
func collectNode(candidates pagemeta.Candidates, payload any) {
	switch node := payload.(type) {
	case []any:
		for _, item := range node {
			collectNode(candidates, item)
		}
	case map[string]any:
		collectObject(candidates, node)
	}
}

func collectObject(candidates pagemeta.Candidates, obj map[string]any) {
	if headline, ok := stringField(obj, "headline"); ok {
		candidates.Add(pagemeta.Titles, headline)
	} else if name, ok := stringField(obj, "name"); ok {
		candidates.Add(pagemeta.Titles, name)
	}

	if description, ok := stringField(obj, "description"); ok {
		candidates.Add(pagemeta.Descriptions, description)
	}

	for _, image := range stringValues(obj["image"]) {
		candidates.Add(pagemeta.Images, image)
	}

	if rawURL, ok := stringField(obj, "url"); ok {
		candidates.Add(pagemeta.URLs, rawURL)
	}

	for _, author := range authorNames(obj["author"]) {
		candidates.Add(pagemeta.Authors, author)
	}

	for _, key := range []string{"datePublished", "dateModified"} {
		if date, ok := stringField(obj, key); ok {
			candidates.Add(pagemeta.Dates, normalizeDate(date))
		}
	}

	// Nested nodes: @graph documents and mainEntity objects.
	if graph, ok := obj["@graph"]; ok {
		collectNode(candidates, graph)
	}
}

// stringField returns a non-empty trimmed string value for key.
func stringField(obj map[string]any, key string) (string, bool) {
	value, ok := obj[key].(string)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// stringValues flattens a JSON-LD value that may be a string, an array, or
// an ImageObject carrying a url field.
func stringValues(value any) []string {
	switch v := value.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return []string{trimmed}
		}
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, stringValues(item)...)
		}
		return out
	case map[string]any:
		if rawURL, ok := stringField(v, "url"); ok {
			return []string{rawURL}
		}
	}
	return nil
}

// authorNames flattens a JSON-LD author value, which may be a string, a
// Person object with a name field, or an array of either.
func authorNames(value any) []string {
	switch v := value.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return []string{trimmed}
		}
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, authorNames(item)...)
		}
		return out
	case map[string]any:
		if name, ok := stringField(v, "name"); ok {
			return []string{name}
		}
	}
	return nil
}

// normalizeDate converts a recognized date string to RFC 3339 in UTC.
// Unparseable values pass through unmodified.
func normalizeDate(value string) string {
	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return value
	}
	return parsed.UTC().Format(time.RFC3339)
}
