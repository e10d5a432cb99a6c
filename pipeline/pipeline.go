// Package pipeline implements the extraction pipeline: an ordered chain of
// pluggable techniques whose per-category candidates are merged, in
// configured order, into a single pagemeta.Result.
package pipeline

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pagemeta/pagemeta"
	pmgoquery "github.com/pagemeta/pagemeta/goquery"
	pmhtml "github.com/pagemeta/pagemeta/html"
	"github.com/pagemeta/pagemeta/readability"
	"github.com/pagemeta/pagemeta/trafilatura"
)

var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor runs configured techniques in order and merges their output.
// Configuration is copied at construction and never mutated afterwards, so
// a single Extractor is safe for concurrent use: every call resolves fresh
// technique instances and keeps its accumulator local.
type Extractor struct {
	registry      pagemeta.Registry
	techniques    []string
	singular      map[string]pagemeta.Category
	urlCategories map[pagemeta.Category]bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRegistry sets the registry used to resolve technique identifiers.
func WithRegistry(registry pagemeta.Registry) Option {
	return func(e *Extractor) {
		e.registry = registry
	}
}

// WithTechniques sets the ordered technique identifiers. Order determines
// priority: candidates from earlier techniques come first in every merged
// category list.
func WithTechniques(names ...string) Option {
	return func(e *Extractor) {
		e.techniques = append([]string(nil), names...)
	}
}

// WithSingular sets the mapping from singular accessor names to categories
// carried onto every Result.
func WithSingular(accessors map[string]pagemeta.Category) Option {
	return func(e *Extractor) {
		e.singular = make(map[string]pagemeta.Category, len(accessors))
		for name, category := range accessors {
			e.singular[name] = category
		}
	}
}

// WithURLCategories sets the categories whose candidates are resolved
// against the source URL after merging.
func WithURLCategories(categories ...pagemeta.Category) Option {
	return func(e *Extractor) {
		e.urlCategories = make(map[pagemeta.Category]bool, len(categories))
		for _, category := range categories {
			e.urlCategories[category] = true
		}
	}
}

// New creates an Extractor. Defaults: the built-in registry, the opengraph
// technique only, the default singular accessors, and URL resolution for the
// images and urls categories.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		registry:   DefaultRegistry(),
		techniques: []string{"opengraph"},
		singular:   pagemeta.DefaultSingular(),
		urlCategories: map[pagemeta.Category]bool{
			pagemeta.Images: true,
			pagemeta.URLs:   true,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultRegistry returns a Registry with every built-in technique
// registered under its canonical identifier.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("opengraph", func() pagemeta.Technique { return pmgoquery.NewOpenGraph() })
	r.Register("twittercard", func() pagemeta.Technique { return pmgoquery.NewTwitterCard() })
	r.Register("metatags", func() pagemeta.Technique { return pmgoquery.NewMetaTags() })
	r.Register("jsonld", func() pagemeta.Technique { return pmgoquery.NewJSONLD() })
	r.Register("semantic", func() pagemeta.Technique { return pmhtml.NewSemantic() })
	r.Register("trafilatura", func() pagemeta.Technique { return trafilatura.New() })
	r.Register("readability", func() pagemeta.Technique { return readability.New() })
	return r
}

// Techniques returns the configured technique identifiers in order.
func (e *Extractor) Techniques() []string {
	return append([]string(nil), e.techniques...)
}

// Extract runs the configured techniques against markup and merges their
// candidates into a Result.
//
// Returns EINVALID if markup is empty or sourceURL cannot be parsed, and
// ENOTFOUND if any configured technique identifier cannot be resolved.
// Resolution happens before any technique runs, so a configuration mistake
// aborts the call without side effects. A failure inside a technique aborts
// the whole call; there is no skip-and-continue.
func (e *Extractor) Extract(markup string, sourceURL string) (*pagemeta.Result, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "empty markup")
	}

	var base *url.URL
	if sourceURL != "" {
		parsed, err := url.Parse(sourceURL)
		if err != nil {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "invalid source URL: %v", err)
		}
		base = parsed
	}

	factories := make([]pagemeta.Factory, len(e.techniques))
	for i, name := range e.techniques {
		factory, err := e.registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		factories[i] = factory
	}

	merged := make(pagemeta.Candidates)
	for i, factory := range factories {
		candidates, err := factory().Extract(markup)
		if err != nil {
			return nil, fmt.Errorf("technique %q: %w", e.techniques[i], err)
		}
		for category, values := range candidates {
			merged[category] = append(merged[category], values...)
		}
	}

	if base != nil {
		for category := range e.urlCategories {
			values := merged[category]
			for i, value := range values {
				values[i] = absolutize(base, value)
			}
		}
	}

	return pagemeta.NewResult(sourceURL, merged, e.singular), nil
}

// absolutize resolves a candidate against base. Absolute candidates and
// candidates that cannot be parsed pass through unmodified.
func absolutize(base *url.URL, candidate string) string {
	if candidate == "" {
		return candidate
	}
	ref, err := url.Parse(candidate)
	if err != nil {
		return candidate
	}
	if ref.IsAbs() {
		return candidate
	}
	return base.ResolveReference(ref).String()
}
