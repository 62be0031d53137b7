package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	autodoc "github.com/agentflare-ai/go-autodoc"
	"github.com/agentflare-ai/go-autodoc/symbol"
)

// fileConfig is the on-disk configuration. project_url and aliases are
// union-typed (scalar or mapping, list or mapping) and pages must keep
// document order, so those three decode through yaml.Node.
type fileConfig struct {
	ProjectURL             yaml.Node `yaml:"project_url"`
	TemplateDir            string    `yaml:"template_dir"`
	ExamplesDir            string    `yaml:"examples_dir"`
	TitlesSize             string    `yaml:"titles_size"`
	MaxSignatureLineLength int       `yaml:"max_signature_line_length"`
	SymbolTable            string    `yaml:"symbol_table"`
	Aliases                yaml.Node `yaml:"aliases"`
	Pages                  yaml.Node `yaml:"pages"`
}

// loadConfig reads the YAML config and converts it into generator options.
func loadConfig(path string) ([]autodoc.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var opts []autodoc.Option
	pages, err := decodePages(&cfg.Pages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	opts = append(opts, autodoc.WithPages(pages))

	switch cfg.ProjectURL.Kind {
	case 0:
	case yaml.ScalarNode:
		var url string
		if err := cfg.ProjectURL.Decode(&url); err != nil {
			return nil, err
		}
		opts = append(opts, autodoc.WithProjectURL(url))
	case yaml.MappingNode:
		var urls map[string]string
		if err := cfg.ProjectURL.Decode(&urls); err != nil {
			return nil, err
		}
		opts = append(opts, autodoc.WithProjectURLMap(urls))
	default:
		return nil, fmt.Errorf("%s: project_url must be a string or a mapping", path)
	}

	switch cfg.Aliases.Kind {
	case 0:
	case yaml.SequenceNode:
		var refs []string
		if err := cfg.Aliases.Decode(&refs); err != nil {
			return nil, err
		}
		opts = append(opts, autodoc.WithExtraAliases(refs...))
	case yaml.MappingNode:
		var overrides map[string]string
		if err := cfg.Aliases.Decode(&overrides); err != nil {
			return nil, err
		}
		opts = append(opts, autodoc.WithAliasOverrides(overrides))
	default:
		return nil, fmt.Errorf("%s: aliases must be a list or a mapping", path)
	}

	if cfg.TemplateDir != "" {
		opts = append(opts, autodoc.WithTemplateDir(cfg.TemplateDir))
	}
	if cfg.ExamplesDir != "" {
		opts = append(opts, autodoc.WithExamplesDir(cfg.ExamplesDir))
	}
	if cfg.TitlesSize != "" {
		opts = append(opts, autodoc.WithTitlesSize(cfg.TitlesSize))
	}
	if cfg.MaxSignatureLineLength > 0 {
		opts = append(opts, autodoc.WithMaxSignatureLineLength(cfg.MaxSignatureLineLength))
	}
	if cfg.SymbolTable != "" {
		table, err := symbol.LoadTable(cfg.SymbolTable)
		if err != nil {
			return nil, err
		}
		opts = append(opts, autodoc.WithResolver(table))
	}
	return opts, nil
}

// decodePages converts the pages mapping while preserving document order.
// Malformed values are carried through as plain decoded values so Generate
// can report the type mismatch against the page path.
func decodePages(node *yaml.Node) (autodoc.Pages, error) {
	if node.Kind == 0 || node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("pages must be a mapping of file paths")
	}
	var pages autodoc.Pages
	for i := 0; i+1 < len(node.Content); i += 2 {
		path := node.Content[i].Value
		val := node.Content[i+1]
		pages = append(pages, autodoc.Page{Path: path, Content: decodePageContent(val)})
	}
	return pages, nil
}

func decodePageContent(val *yaml.Node) any {
	switch val.Kind {
	case yaml.SequenceNode:
		var elems []string
		if err := val.Decode(&elems); err == nil {
			return elems
		}
	case yaml.MappingNode:
		sections := make([]autodoc.Section, 0, len(val.Content)/2)
		for j := 0; j+1 < len(val.Content); j += 2 {
			var elems []string
			if err := val.Content[j+1].Decode(&elems); err != nil {
				sections = nil
				break
			}
			sections = append(sections, autodoc.Section{Tag: val.Content[j].Value, Elements: elems})
		}
		if sections != nil {
			return sections
		}
	}
	var raw any
	_ = val.Decode(&raw)
	return raw
}
