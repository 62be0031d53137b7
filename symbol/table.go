package symbol

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// tableEntry is the on-disk shape of one pre-extracted symbol.
type tableEntry struct {
	Name   string            `yaml:"name"`
	Path   string            `yaml:"path"`
	Kind   string            `yaml:"kind"`
	Lang   string            `yaml:"lang"`
	Params []string          `yaml:"params"`
	Doc    string            `yaml:"doc"`
	Hints  map[string]string `yaml:"hints"`
	File   string            `yaml:"file"`
	Line   int               `yaml:"line"`
}

type tableFile struct {
	Lang    string       `yaml:"lang"`
	Symbols []tableEntry `yaml:"symbols"`
}

// Table resolves references against a symbol table extracted ahead of time by
// an external tool, for codebases Go cannot introspect directly. Tables are
// YAML (JSON parses as a subset); each entry carries the reference name, an
// optional canonical path, kind, source-form parameter tokens, docstring, and
// type hints.
type Table struct {
	byRef map[string]*Symbol
}

// LoadTable reads a symbol table from disk.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

// ParseTable builds a Table from raw YAML.
func ParseTable(data []byte) (*Table, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse symbol table: %w", err)
	}
	t := &Table{byRef: make(map[string]*Symbol, len(tf.Symbols))}
	for _, e := range tf.Symbols {
		if e.Name == "" {
			return nil, fmt.Errorf("symbol table entry missing name")
		}
		kind, err := ParseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("symbol %s: %w", e.Name, err)
		}
		sym := &Symbol{
			Kind:      kind,
			Name:      shortName(e.Name),
			Path:      e.Path,
			Lang:      e.Lang,
			Params:    e.Params,
			Doc:       strings.TrimSpace(e.Doc),
			TypeHints: e.Hints,
		}
		if sym.Path == "" {
			sym.Path = e.Name
		}
		if sym.Lang == "" {
			sym.Lang = tf.Lang
		}
		if e.File != "" {
			sym.Source = &SourceRef{File: e.File, Line: e.Line}
		}
		t.byRef[e.Name] = sym
		if _, taken := t.byRef[sym.Path]; !taken {
			t.byRef[sym.Path] = sym
		}
	}
	return t, nil
}

// Resolve implements Resolver, matching either the reference name or the
// canonical path of an entry.
func (t *Table) Resolve(ref string) (*Symbol, error) {
	if sym, ok := t.byRef[ref]; ok {
		return sym, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

func shortName(ref string) string {
	if i := strings.LastIndex(ref, "."); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
