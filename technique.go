package pagemeta

// Category names a kind of extractable fact, such as page titles or
// representative images. The category set is open: techniques may emit
// categories beyond the built-ins below and Result stores them all.
type Category string

// Built-in categories. Techniques are free to introduce others.
const (
	Titles       Category = "titles"
	Descriptions Category = "descriptions"
	Images       Category = "images"
	URLs         Category = "urls"
	Sitenames    Category = "sitenames"
	Authors      Category = "authors"
	Dates        Category = "dates"
)

// Candidates maps a category to the ordered values a technique proposes for
// it. Order is meaningful (earlier values are considered better) and
// duplicates are preserved; techniques that want filtering do it themselves.
type Candidates map[Category][]string

// Add appends values to the category's candidate list.
func (c Candidates) Add(category Category, values ...string) {
	c[category] = append(c[category], values...)
}

// Technique is a pluggable extraction strategy. A Technique scans markup and
// proposes candidate values for one or more categories.
//
// Implementations must treat missing structure (no matching tags, empty
// head, and so on) as "no candidates" and return empty or absent category
// lists. Returning an error aborts the extraction call the technique is part
// of, so errors are reserved for markup that cannot be processed at all.
type Technique interface {
	// Name returns the identifier the technique is registered under.
	Name() string

	// Extract scans markup and returns candidate values grouped by
	// category, in document order within each category.
	Extract(markup string) (Candidates, error)
}

// Factory produces a fresh Technique instance for a single extraction call.
// Instances never see more than one call, so implementations cannot leak
// state between unrelated extractions. Technique customization happens at
// configuration time: register a factory closing over the desired options.
type Factory func() Technique

// Registry resolves technique identifiers to factories. A Registry is
// populated at startup and read-only afterwards; it is not safe to call
// Register concurrently with Resolve.
type Registry interface {
	// Register adds a factory under the given identifier. If a factory is
	// already registered under the identifier, it is replaced.
	Register(name string, factory Factory)

	// Resolve returns the factory registered under name.
	// Returns ENOTFOUND if no factory is registered.
	Resolve(name string) (Factory, error)

	// Names returns all registered identifiers in sorted order.
	Names() []string
}
