package pagemeta

// Extractor extracts metadata candidates from an HTML document.
type Extractor interface {
	// Extract runs the configured techniques against markup, in configured
	// order, and merges their candidates into a Result. sourceURL may be
	// empty; when set it is recorded on the Result and used to resolve
	// relative candidates in URL-bearing categories.
	//
	// Returns EINVALID if markup is empty and ENOTFOUND if a configured
	// technique identifier cannot be resolved. A failure inside a technique
	// propagates as-is and no partial Result is returned.
	Extract(markup string, sourceURL string) (*Result, error)
}
