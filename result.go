package pagemeta

import "sort"

// DefaultSingular returns the default mapping from singular accessor names
// to the categories they read. Extractors copy this at construction; callers
// may extend the copy with their own categories.
func DefaultSingular() map[string]Category {
	return map[string]Category{
		"title":       Titles,
		"description": Descriptions,
		"image":       Images,
		"url":         URLs,
	}
}

// Result holds the merged candidate lists of one extraction call. It is a
// pure value object: immutable after construction, with first-or-none
// accessors for configured singular categories and full ordered lists for
// every category a technique reported, including categories outside the
// built-in schema.
type Result struct {
	sourceURL  string
	categories map[Category][]string
	singular   map[string]Category
}

// NewResult creates a Result from merged candidate lists. The maps and
// slices are copied, so later mutation of the arguments cannot change the
// Result. A nil singular map means no singular accessors are configured.
func NewResult(sourceURL string, categories Candidates, singular map[string]Category) *Result {
	r := &Result{
		sourceURL:  sourceURL,
		categories: make(map[Category][]string, len(categories)),
		singular:   make(map[string]Category, len(singular)),
	}
	for category, values := range categories {
		r.categories[category] = append([]string(nil), values...)
	}
	for name, category := range singular {
		r.singular[name] = category
	}
	return r
}

// SourceURL returns the source URL supplied at extraction time, or an empty
// string if none was supplied.
func (r *Result) SourceURL() string {
	return r.sourceURL
}

// All returns the full ordered candidate list for a category. The returned
// slice is a copy; it is empty for categories no technique reported.
func (r *Result) All(category Category) []string {
	return append([]string(nil), r.categories[category]...)
}

// First returns the highest-priority candidate for a category. The second
// return value is false when the category has no candidates.
func (r *Result) First(category Category) (string, bool) {
	values := r.categories[category]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Singular returns the first candidate of the category configured under the
// given accessor name. The second return value is false when the name is
// not a configured singular accessor or the category has no candidates.
func (r *Result) Singular(name string) (string, bool) {
	category, ok := r.singular[name]
	if !ok {
		return "", false
	}
	return r.First(category)
}

// Title returns the first title candidate.
func (r *Result) Title() (string, bool) { return r.Singular("title") }

// Description returns the first description candidate.
func (r *Result) Description() (string, bool) { return r.Singular("description") }

// Image returns the first image candidate.
func (r *Result) Image() (string, bool) { return r.Singular("image") }

// URL returns the first URL candidate.
func (r *Result) URL() (string, bool) { return r.Singular("url") }

// Categories returns the names of all categories with at least one
// candidate, sorted for deterministic iteration.
func (r *Result) Categories() []Category {
	names := make([]Category, 0, len(r.categories))
	for category, values := range r.categories {
		if len(values) == 0 {
			continue
		}
		names = append(names, category)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Map returns a copy of every non-empty candidate list keyed by category.
// Useful for serialization.
func (r *Result) Map() map[Category][]string {
	out := make(map[Category][]string, len(r.categories))
	for category, values := range r.categories {
		if len(values) == 0 {
			continue
		}
		out[category] = append([]string(nil), values...)
	}
	return out
}
