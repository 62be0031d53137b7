// Package symbol resolves fully-qualified symbol names to a language-neutral
// description of the target: its kind, call parameters, docstring, and declared
// types. Two resolvers are provided: GoSource, which loads real Go packages,
// and Table, which reads a pre-extracted symbol table so references from other
// languages can be documented without a live toolchain.
package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// ReturnHint is the reserved key under which a symbol's return type is stored
// in its type-hint map.
const ReturnHint = "return"

// ErrNotFound reports that a dotted path did not resolve to any symbol.
var ErrNotFound = errors.New("symbol not found")

// Kind classifies a resolved symbol.
type Kind int

const (
	Function Kind = iota
	Class
	Method
	Property
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Function:
		return "function"
	case Class:
		return "class"
	case Method:
		return "method"
	case Property:
		return "property"
	default:
		return "unknown"
	}
}

// ParseKind converts a symbol-table kind string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "function", "func":
		return Function, nil
	case "class", "type", "struct":
		return Class, nil
	case "method":
		return Method, nil
	case "property", "field":
		return Property, nil
	}
	return Function, fmt.Errorf("unknown symbol kind %q", s)
}

// SourceRef locates a symbol's declaration for source links.
type SourceRef struct {
	File string
	Line int
}

// Symbol describes one documented target.
//
// Params hold the parameter list exactly as written in source, one token per
// parameter, so signatures reproduce declared defaults and variadic markers
// literally. TypeHints map parameter names to their declared types, with the
// return type under ReturnHint; class paths appearing in hint values are fully
// qualified so alias substitution can rewrite them.
type Symbol struct {
	Kind      Kind
	Name      string
	Path      string
	Lang      string
	Params    []string
	Doc       string
	TypeHints map[string]string
	Source    *SourceRef
}

// Resolver turns a dotted-path reference into a Symbol. A failed resolution
// propagates the underlying loader error unmodified.
type Resolver interface {
	Resolve(name string) (*Symbol, error)
}

// LastTwo returns the final two dot-separated segments of a reference, used as
// the display name when a method or property is referenced by dotted path.
func LastTwo(ref string) string {
	parts := strings.Split(ref, ".")
	if len(parts) <= 2 {
		return ref
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
