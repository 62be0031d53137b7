package autodoc

import "fmt"

// ManifestTypeError reports a page whose manifest value is neither a list of
// symbol names nor a mapping from tags to such lists.
type ManifestTypeError struct {
	Path  string
	Value any
}

func (e *ManifestTypeError) Error() string {
	return fmt.Sprintf("page %s: expected a list of symbols or a tag mapping, got %T: %v", e.Path, e.Value, e.Value)
}
