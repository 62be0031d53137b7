package autodoc

import (
	"github.com/rs/zerolog"

	"github.com/agentflare-ai/go-autodoc/symbol"
)

// Option configures a Generator.
type Option func(*Generator) error

// WithPages sets the page manifest. Order is preserved.
func WithPages(pages Pages) Option {
	return func(g *Generator) error {
		g.pages = pages
		return nil
	}
}

// WithProjectURL enables [[source]] links, prefixing every symbol's file and
// line with the given URL.
func WithProjectURL(url string) Option {
	return func(g *Generator) error {
		g.projectURL = url
		return nil
	}
}

// WithProjectURLMap enables [[source]] links with a URL chosen per symbol by
// longest matching dotted-path prefix.
func WithProjectURLMap(urls map[string]string) Option {
	return func(g *Generator) error {
		g.projectURLs = urls
		return nil
	}
}

// WithTemplateDir sets the directory copied verbatim into the destination
// before pages are filled in.
func WithTemplateDir(dir string) Option {
	return func(g *Generator) error {
		g.templateDir = dir
		return nil
	}
}

// WithExamplesDir sets the directory whose files are converted into example
// pages under dest/examples.
func WithExamplesDir(dir string) Option {
	return func(g *Generator) error {
		g.examplesDir = dir
		return nil
	}
}

// WithExtraAliases registers additional class references whose canonical path
// should display under the given name, resolved the same way manifest entries
// are.
func WithExtraAliases(refs ...string) Option {
	return func(g *Generator) error {
		g.extraAliases = append(g.extraAliases, refs...)
		return nil
	}
}

// WithAliasOverrides merges explicit canonical-path-to-alias entries, which
// take precedence over everything derived from the manifest.
func WithAliasOverrides(overrides map[string]string) Option {
	return func(g *Generator) error {
		if g.aliasOverrides == nil {
			g.aliasOverrides = make(map[string]string, len(overrides))
		}
		for path, alias := range overrides {
			g.aliasOverrides[path] = alias
		}
		return nil
	}
}

// WithMaxSignatureLineLength bounds rendered signature lines. Default 110.
func WithMaxSignatureLineLength(n int) Option {
	return func(g *Generator) error {
		g.maxSigLen = n
		return nil
	}
}

// WithTitlesSize sets the heading marker prefix for symbol titles.
// Default "###".
func WithTitlesSize(marker string) Option {
	return func(g *Generator) error {
		g.titlesSize = marker
		return nil
	}
}

// WithResolver replaces the default Go source resolver, e.g. with a
// pre-extracted symbol table.
func WithResolver(r symbol.Resolver) Option {
	return func(g *Generator) error {
		g.resolver = r
		return nil
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) error {
		g.log = log
		return nil
	}
}

// WithSignatureHook installs a post-processing function applied to every
// rendered signature.
func WithSignatureHook(hook func(string) string) Option {
	return func(g *Generator) error {
		g.signatureHook = hook
		return nil
	}
}

// WithDocstringHook installs a post-processing function applied to every
// rendered docstring.
func WithDocstringHook(hook func(string) string) Option {
	return func(g *Generator) error {
		g.docstringHook = hook
		return nil
	}
}
