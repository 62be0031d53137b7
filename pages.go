package autodoc

import "sort"

// DefaultTag is the insertion marker used when a page maps straight to a list
// of symbols.
const DefaultTag = "autogenerated"

// Section is one named insertion point of a page together with the symbols
// rendered into it.
type Section struct {
	Tag      string
	Elements []string
}

// Page pairs an output file path with its content: either a []string of
// symbol references inserted at DefaultTag, a []Section rendered per tag in
// order, or a map[string][]string (tags iterate sorted). Anything else raises
// a ManifestTypeError when the page is generated.
type Page struct {
	Path    string
	Content any
}

// Pages is the ordered manifest; generation follows slice order.
type Pages []Page

// sections normalizes a page's content into an ordered section list.
func (p Page) sections() ([]Section, error) {
	switch content := p.Content.(type) {
	case []string:
		return []Section{{Tag: DefaultTag, Elements: content}}, nil
	case []Section:
		return content, nil
	case map[string][]string:
		tags := make([]string, 0, len(content))
		for tag := range content {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		out := make([]Section, 0, len(tags))
		for _, tag := range tags {
			out = append(out, Section{Tag: tag, Elements: content[tag]})
		}
		return out, nil
	default:
		return nil, &ManifestTypeError{Path: p.Path, Value: p.Content}
	}
}

// flatten lists every symbol reference in manifest order, crossing the
// one-level tag mapping when present. Pages with malformed content are
// skipped here; Generate surfaces the error when it reaches them.
func (ps Pages) flatten() []string {
	var refs []string
	for _, page := range ps {
		sections, err := page.sections()
		if err != nil {
			continue
		}
		for _, sec := range sections {
			refs = append(refs, sec.Elements...)
		}
	}
	return refs
}
