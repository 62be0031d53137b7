// Package autodoc keeps curated API reference pages in sync with source code.
//
// A page manifest maps output markdown files to ordered lists of
// fully-qualified symbol names. For every symbol, autodoc resolves the live
// declaration, renders its call signature and docstring as markdown, and
// splices the result into a template file at a named insertion tag.
//
// ## Manifest
//
// Each manifest entry maps a file path to either a list of symbol references,
// spliced at the default `{{autogenerated}}` tag:
//
//	pages := autodoc.Pages{
//		{Path: "api.md", Content: []string{"./widgets.Dense", "./widgets.Dense.Compile"}},
//	}
//
// or to named sections, each spliced at its own `{{tag}}`:
//
//	pages := autodoc.Pages{
//		{Path: "layers.md", Content: []autodoc.Section{
//			{Tag: "core", Elements: []string{"./widgets.Dense"}},
//		}},
//	}
//
// Any other content shape fails with a ManifestTypeError naming the page.
//
// ## Symbol resolution
//
// References resolve through a symbol.Resolver. The default resolver loads Go
// packages, so "./widgets.Dense.Compile" documents the Compile method of type
// Dense in the widgets package. A pre-extracted symbol table (YAML) can be
// substituted via WithResolver for codebases Go cannot introspect; table
// entries carry parameter tokens verbatim, including default literals and
// variadic markers.
//
// ## Generation
//
//	gen, err := autodoc.New(
//		autodoc.WithPages(pages),
//		autodoc.WithTemplateDir("templates"),
//		autodoc.WithProjectURL("https://github.com/acme/widgets/blob/main"),
//	)
//	if err != nil {
//		...
//	}
//	err = gen.Generate(ctx, "docs")
//
// Generate wipes the destination, copies the template tree, renders every
// page in manifest order, and converts the examples directory. Runs are
// stateless: the alias table mapping canonical class paths to their manifest
// spellings is rebuilt on every call.
package autodoc
