package symbol

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/doc"
	"go/format"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// GoSource resolves dotted references against Go packages on disk. A reference
// is a package pattern followed by a symbol and optional member, for example
// "./widgets.Dense" or "github.com/acme/kit.Model.Compile". Loaded packages
// are cached for the lifetime of the resolver so a manifest that documents
// many symbols from one package loads it once.
type GoSource struct {
	ctx   context.Context
	cache map[string]*loadedPackage
}

type loadedPackage struct {
	pkg *packages.Package
	doc *doc.Package
	err error
}

// NewGoSource returns a resolver rooted at the current module. The context is
// passed through to the package loader.
func NewGoSource(ctx context.Context) *GoSource {
	if ctx == nil {
		ctx = context.Background()
	}
	return &GoSource{ctx: ctx, cache: make(map[string]*loadedPackage)}
}

// Resolve implements Resolver. Each dot in the reference is tried as the
// package/symbol boundary, left to right, so both directory patterns and
// import paths work without the caller marking the split.
func (r *GoSource) Resolve(ref string) (*Symbol, error) {
	var lastErr error
	for _, cand := range splitCandidates(ref) {
		lp := r.load(cand.pkgExpr)
		if lp.err != nil {
			lastErr = lp.err
			continue
		}
		sym, err := r.lookup(lp, cand.symbol, cand.member)
		if err != nil {
			lastErr = err
			continue
		}
		if sym != nil {
			return sym, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

type candidate struct {
	pkgExpr string
	symbol  string
	member  string
}

// splitCandidates enumerates the plausible (package, symbol, member) splits of
// a dotted reference, skipping splits with an empty package expression.
func splitCandidates(ref string) []candidate {
	var out []candidate
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] != '.' {
			continue
		}
		pkgExpr := ref[:i]
		if pkgExpr == "" || strings.HasSuffix(pkgExpr, "/") {
			continue
		}
		symbol, member := splitMember(ref[i+1:])
		if symbol == "" || strings.ContainsAny(symbol, `/\`) {
			continue
		}
		out = append(out, candidate{pkgExpr: pkgExpr, symbol: symbol, member: member})
	}
	return out
}

func splitMember(spec string) (string, string) {
	parts := strings.Split(spec, ".")
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], ".")
}

func (r *GoSource) load(pattern string) *loadedPackage {
	if lp, ok := r.cache[pattern]; ok {
		return lp
	}
	lp := &loadedPackage{}
	r.cache[pattern] = lp
	cfg := &packages.Config{
		Context: r.ctx,
		Mode: packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedModule | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		lp.err = err
		return lp
	}
	if len(pkgs) == 0 {
		lp.err = fmt.Errorf("no Go packages matched %q", pattern)
		return lp
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		lp.err = fmt.Errorf("%s", pkg.Errors[0])
		return lp
	}
	docPkg, err := doc.NewFromFiles(pkg.Fset, pkg.Syntax, pkg.PkgPath, doc.AllMethods)
	if err != nil {
		lp.err = err
		return lp
	}
	lp.pkg = pkg
	lp.doc = docPkg
	return lp
}

func (r *GoSource) lookup(lp *loadedPackage, name, member string) (*Symbol, error) {
	for _, t := range lp.doc.Types {
		if t.Name != name {
			continue
		}
		if member == "" {
			return r.classSymbol(lp, t), nil
		}
		for _, m := range t.Methods {
			if m.Name == member {
				return r.methodSymbol(lp, t, m), nil
			}
		}
		if sym := r.fieldSymbol(lp, t, member); sym != nil {
			return sym, nil
		}
		return nil, fmt.Errorf("%w: %s has no method or field %q in %s", ErrNotFound, name, member, lp.pkg.PkgPath)
	}
	if member != "" {
		return nil, nil
	}
	for _, f := range lp.doc.Funcs {
		if f.Name == name {
			return r.funcSymbol(lp, f), nil
		}
	}
	// Factory functions are filed under the type they return.
	for _, t := range lp.doc.Types {
		for _, f := range t.Funcs {
			if f.Name == name {
				return r.funcSymbol(lp, f), nil
			}
		}
	}
	return nil, nil
}

func (r *GoSource) funcSymbol(lp *loadedPackage, f *doc.Func) *Symbol {
	return &Symbol{
		Kind:      Function,
		Name:      f.Name,
		Path:      lp.pkg.PkgPath + "." + f.Name,
		Lang:      "go",
		Params:    paramTokens(lp.pkg.Fset, f.Decl),
		Doc:       strings.TrimSpace(f.Doc),
		TypeHints: scopeHints(lp.pkg.Types.Scope().Lookup(f.Name)),
		Source:    sourceRef(lp, f.Decl.Pos()),
	}
}

// classSymbol documents a type. Its displayed signature comes from the
// conventional constructor (NewName, or a lone New returning the type); a type
// without one yields an empty parameter list, and its attribute hints fall
// back to the struct's field types.
func (r *GoSource) classSymbol(lp *loadedPackage, t *doc.Type) *Symbol {
	sym := &Symbol{
		Kind:   Class,
		Name:   t.Name,
		Path:   lp.pkg.PkgPath + "." + t.Name,
		Lang:   "go",
		Doc:    strings.TrimSpace(t.Doc),
		Source: sourceRef(lp, t.Decl.Pos()),
	}
	if ctor := constructorFor(t); ctor != nil {
		sym.Params = paramTokens(lp.pkg.Fset, ctor.Decl)
		sym.TypeHints = scopeHints(lp.pkg.Types.Scope().Lookup(ctor.Name))
	} else {
		sym.TypeHints = fieldHints(lp.pkg, t.Name)
	}
	return sym
}

func constructorFor(t *doc.Type) *doc.Func {
	for _, f := range t.Funcs {
		if f.Name == "New"+t.Name {
			return f
		}
	}
	for _, f := range t.Funcs {
		if f.Name == "New" {
			return f
		}
	}
	return nil
}

func (r *GoSource) methodSymbol(lp *loadedPackage, t *doc.Type, m *doc.Func) *Symbol {
	return &Symbol{
		Kind:      Method,
		Name:      m.Name,
		Path:      lp.pkg.PkgPath + "." + t.Name + "." + m.Name,
		Lang:      "go",
		Params:    paramTokens(lp.pkg.Fset, m.Decl),
		Doc:       strings.TrimSpace(m.Doc),
		TypeHints: methodHints(lp.pkg, t.Name, m.Name),
		Source:    sourceRef(lp, m.Decl.Pos()),
	}
}

func (r *GoSource) fieldSymbol(lp *loadedPackage, t *doc.Type, name string) *Symbol {
	spec := findTypeSpec(t.Decl, t.Name)
	if spec == nil {
		return nil
	}
	st, ok := spec.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return nil
	}
	for _, field := range st.Fields.List {
		for _, ident := range field.Names {
			if ident.Name != name {
				continue
			}
			docText := ""
			if field.Doc != nil {
				docText = field.Doc.Text()
			}
			return &Symbol{
				Kind:   Property,
				Name:   name,
				Path:   lp.pkg.PkgPath + "." + t.Name + "." + name,
				Lang:   "go",
				Doc:    strings.TrimSpace(docText),
				Source: sourceRef(lp, ident.Pos()),
			}
		}
	}
	return nil
}

func findTypeSpec(decl *ast.GenDecl, name string) *ast.TypeSpec {
	if decl == nil {
		return nil
	}
	for _, spec := range decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}
		if ts.Name != nil && ts.Name.Name == name {
			return ts
		}
	}
	return nil
}

// paramTokens renders each parameter group exactly as written in source.
func paramTokens(fset *token.FileSet, decl *ast.FuncDecl) []string {
	if decl == nil || decl.Type == nil || decl.Type.Params == nil {
		return nil
	}
	var tokens []string
	for _, field := range decl.Type.Params.List {
		var buf bytes.Buffer
		if err := format.Node(&buf, fset, field); err != nil {
			continue
		}
		tokens = append(tokens, strings.TrimSpace(buf.String()))
	}
	return tokens
}

// scopeHints extracts parameter and return types from a package-scope function
// object, fully qualified with import paths.
func scopeHints(obj types.Object) map[string]string {
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil
	}
	return signatureHints(fn.Type().(*types.Signature))
}

func methodHints(pkg *packages.Package, typeName, methodName string) map[string]string {
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil
	}
	m, _, _ := types.LookupFieldOrMethod(obj.Type(), true, pkg.Types, methodName)
	fn, ok := m.(*types.Func)
	if !ok {
		return nil
	}
	return signatureHints(fn.Type().(*types.Signature))
}

func signatureHints(sig *types.Signature) map[string]string {
	hints := make(map[string]string)
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		if p.Name() == "" {
			continue
		}
		hints[p.Name()] = types.TypeString(p.Type(), nil)
	}
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		hints[ReturnHint] = types.TypeString(results.At(0).Type(), nil)
	default:
		parts := make([]string, 0, results.Len())
		for i := 0; i < results.Len(); i++ {
			parts = append(parts, types.TypeString(results.At(i).Type(), nil))
		}
		hints[ReturnHint] = "(" + strings.Join(parts, ", ") + ")"
	}
	if len(hints) == 0 {
		return nil
	}
	return hints
}

func fieldHints(pkg *packages.Package, typeName string) map[string]string {
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil
	}
	hints := make(map[string]string)
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		hints[f.Name()] = types.TypeString(f.Type(), nil)
	}
	if len(hints) == 0 {
		return nil
	}
	return hints
}

// sourceRef locates a declaration, with the file path relative to the module
// root when the package belongs to one so source links stay repo-relative.
func sourceRef(lp *loadedPackage, pos token.Pos) *SourceRef {
	if !pos.IsValid() {
		return nil
	}
	p := lp.pkg.Fset.Position(pos)
	file := p.Filename
	if lp.pkg.Module != nil && lp.pkg.Module.Dir != "" {
		if rel, err := filepath.Rel(lp.pkg.Module.Dir, file); err == nil && !strings.HasPrefix(rel, "..") {
			file = filepath.ToSlash(rel)
		}
	}
	return &SourceRef{File: file, Line: p.Line}
}
