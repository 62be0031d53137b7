package autodoc

import (
	"sort"
	"strings"

	"github.com/agentflare-ai/go-autodoc/symbol"
)

// AliasTable maps canonical symbol paths to the shorter names under which the
// manifest referenced them, so type hints display the way users import things.
// It is rebuilt from the manifest on every Generate call.
type AliasTable struct {
	byPath map[string]string
	// canonical paths sorted longest first; keeps substitution deterministic
	// when one path is a prefix of another, and makes Apply idempotent.
	ordered []string
}

// buildAliases resolves every class referenced by the manifest and records its
// canonical path against the reference string, then merges the user-supplied
// aliases on top. List-form extras are resolved to find their canonical path;
// map-form extras override everything.
func buildAliases(pages Pages, extras []string, overrides map[string]string, resolver symbol.Resolver) (*AliasTable, error) {
	byPath := make(map[string]string)
	for _, ref := range pages.flatten() {
		sym, err := resolver.Resolve(ref)
		if err != nil {
			return nil, err
		}
		if sym.Kind != symbol.Class {
			continue
		}
		byPath[sym.Path] = ref
	}
	for _, ref := range extras {
		sym, err := resolver.Resolve(ref)
		if err != nil {
			return nil, err
		}
		byPath[sym.Path] = ref
	}
	for path, alias := range overrides {
		byPath[path] = alias
	}
	return newAliasTable(byPath), nil
}

func newAliasTable(byPath map[string]string) *AliasTable {
	ordered := make([]string, 0, len(byPath))
	for path := range byPath {
		ordered = append(ordered, path)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})
	return &AliasTable{byPath: byPath, ordered: ordered}
}

// Display returns the preferred name for a canonical path, falling back to
// the path itself.
func (t *AliasTable) Display(path string) string {
	if alias, ok := t.byPath[path]; ok {
		return alias
	}
	return path
}

// Apply rewrites every canonical path occurring in a type's textual form to
// its alias, longest path first.
func (t *AliasTable) Apply(text string) string {
	for _, path := range t.ordered {
		text = strings.ReplaceAll(text, path, t.byPath[path])
	}
	return text
}
