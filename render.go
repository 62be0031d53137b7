package autodoc

import (
	"fmt"
	"strings"

	"github.com/agentflare-ai/go-autodoc/docstring"
	"github.com/agentflare-ai/go-autodoc/signature"
	"github.com/agentflare-ai/go-autodoc/symbol"
)

// renderBlock produces the markdown block for one symbol reference: an
// optional source link, a heading, a fenced signature (never for properties),
// and the processed docstring, terminated by a horizontal rule. Resolution
// errors propagate unmodified.
func (g *Generator) renderBlock(resolver symbol.Resolver, ref string, aliases *AliasTable) (string, error) {
	sym, err := resolver.Resolve(ref)
	if err != nil {
		return "", err
	}

	var blocks []string
	if link := g.sourceLink(sym); link != "" {
		blocks = append(blocks, link)
	}
	blocks = append(blocks, g.titlesSize+" "+sym.Name)

	if sym.Kind != symbol.Property {
		display := ref
		if sym.Kind == symbol.Method {
			// Methods drop the module portion of the reference.
			display = symbol.LastTwo(ref)
		}
		sig := signature.Format(display, sym.Params, g.maxSigLen)
		if g.signatureHook != nil {
			sig = g.signatureHook(sig)
		}
		blocks = append(blocks, codeSnippet(sig, sym.Lang))
	}

	if sym.Doc != "" {
		doc := docstring.Process(sym.Doc, sym.TypeHints, aliases.Apply)
		if g.docstringHook != nil {
			doc = g.docstringHook(doc)
		}
		blocks = append(blocks, doc)
	}
	return strings.Join(blocks, "\n\n") + "\n\n----\n\n", nil
}

// sourceLink renders the [[source]] line when a project URL is configured and
// the symbol carries a source location. With a URL map, the entry with the
// longest dotted-path prefix match wins.
func (g *Generator) sourceLink(sym *symbol.Symbol) string {
	if sym.Source == nil {
		return ""
	}
	base := g.projectURL
	if g.projectURLs != nil {
		best := ""
		for prefix, url := range g.projectURLs {
			if strings.HasPrefix(sym.Path, prefix) && len(prefix) > len(best) {
				best = prefix
				base = url
			}
		}
	}
	if base == "" {
		return ""
	}
	url := strings.TrimSuffix(base, "/") + "/" + sym.Source.File
	if sym.Source.Line > 0 {
		url = fmt.Sprintf("%s#L%d", url, sym.Source.Line)
	}
	return "[[source]](" + url + ")"
}

func codeSnippet(code, lang string) string {
	return "```" + lang + "\n" + code + "\n```"
}
