package autodoc

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentflare-ai/go-autodoc/internal/fileops"
	"github.com/agentflare-ai/go-autodoc/signature"
	"github.com/agentflare-ai/go-autodoc/symbol"
)

// Generator renders the documentation described by its manifest. It holds no
// state between runs; the alias table is derived fresh on every Generate call.
type Generator struct {
	pages          Pages
	projectURL     string
	projectURLs    map[string]string
	templateDir    string
	examplesDir    string
	extraAliases   []string
	aliasOverrides map[string]string
	maxSigLen      int
	titlesSize     string
	resolver       symbol.Resolver
	log            zerolog.Logger
	signatureHook  func(string) string
	docstringHook  func(string) string
}

// New builds a Generator from options.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		maxSigLen:  signature.DefaultMaxLineLength,
		titlesSize: "###",
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Generate wipes destDir, populates it from the template directory, renders
// every manifest page in order, and converts the examples directory. Writes
// are not transactional: an error partway through leaves the destination
// partially populated, and aborts the run immediately.
func (g *Generator) Generate(ctx context.Context, destDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	resolver := g.resolver
	if resolver == nil {
		resolver = symbol.NewGoSource(ctx)
	}

	g.log.Info().Str("dest", destDir).Msg("cleaning destination directory")
	if err := os.RemoveAll(destDir); err != nil {
		return err
	}
	if g.templateDir != "" {
		g.log.Info().Str("templates", g.templateDir).Msg("populating destination from templates")
		if err := fileops.CopyTree(g.templateDir, destDir); err != nil {
			return err
		}
	} else if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}

	aliases, err := buildAliases(g.pages, g.extraAliases, g.aliasOverrides, resolver)
	if err != nil {
		return err
	}

	for _, page := range g.pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		sections, err := page.sections()
		if err != nil {
			return err
		}
		target := filepath.Join(destDir, filepath.FromSlash(page.Path))
		for _, sec := range sections {
			var sb strings.Builder
			for _, ref := range sec.Elements {
				block, err := g.renderBlock(resolver, ref, aliases)
				if err != nil {
					return err
				}
				sb.WriteString(block)
			}
			if err := fileops.InsertInFile(sb.String(), target, sec.Tag); err != nil {
				return err
			}
		}
		g.log.Info().Str("page", page.Path).Msg("rendered page")
	}

	if g.examplesDir != "" {
		g.log.Info().Str("examples", g.examplesDir).Msg("converting examples")
		if err := fileops.CopyExamples(g.examplesDir, filepath.Join(destDir, "examples")); err != nil {
			return err
		}
	}
	return nil
}
