package symbol

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplePkg = "github.com/agentflare-ai/go-autodoc/symbol/testdata/example"

func TestGoSourceResolvesClass(t *testing.T) {
	r := NewGoSource(context.Background())
	sym, err := r.Resolve("./testdata/example.Greeter")
	require.NoError(t, err)

	assert.Equal(t, Class, sym.Kind)
	assert.Equal(t, "Greeter", sym.Name)
	assert.Equal(t, examplePkg+".Greeter", sym.Path)
	assert.Equal(t, "go", sym.Lang)
	// Signature comes from the conventional constructor.
	assert.Equal(t, []string{"name string", "loud bool"}, sym.Params)
	assert.Contains(t, sym.Doc, "Greeter produces greeting messages.")
	assert.Equal(t, "string", sym.TypeHints["name"])
	assert.Equal(t, "bool", sym.TypeHints["loud"])
	require.NotNil(t, sym.Source)
	assert.Equal(t, "symbol/testdata/example/example.go", sym.Source.File)
	assert.Greater(t, sym.Source.Line, 0)
}

func TestGoSourceResolvesMethod(t *testing.T) {
	r := NewGoSource(context.Background())
	sym, err := r.Resolve("./testdata/example.Greeter.Greet")
	require.NoError(t, err)

	assert.Equal(t, Method, sym.Kind)
	assert.Equal(t, "Greet", sym.Name)
	assert.Equal(t, examplePkg+".Greeter.Greet", sym.Path)
	assert.Equal(t, []string{"punctuation string", "extras ...string"}, sym.Params)
	assert.Equal(t, "string", sym.TypeHints["punctuation"])
	assert.Equal(t, "[]string", sym.TypeHints["extras"])
	assert.Equal(t, "string", sym.TypeHints[ReturnHint])
}

func TestGoSourceResolvesField(t *testing.T) {
	r := NewGoSource(context.Background())
	sym, err := r.Resolve("./testdata/example.Greeter.Name")
	require.NoError(t, err)

	assert.Equal(t, Property, sym.Kind)
	assert.Equal(t, "Name", sym.Name)
	assert.Equal(t, "Name is the recipient of the greeting.", sym.Doc)
	assert.Empty(t, sym.Params)
}

func TestGoSourceResolvesFunction(t *testing.T) {
	r := NewGoSource(context.Background())
	sym, err := r.Resolve("./testdata/example.Shout")
	require.NoError(t, err)
	assert.Equal(t, Function, sym.Kind)
	assert.Equal(t, []string{"g *Greeter"}, sym.Params)
	assert.Equal(t, "*"+examplePkg+".Greeter", sym.TypeHints["g"])
}

func TestGoSourceResolvesFactoryFunction(t *testing.T) {
	r := NewGoSource(context.Background())
	sym, err := r.Resolve("./testdata/example.NewGreeter")
	require.NoError(t, err)
	assert.Equal(t, Function, sym.Kind)
	assert.Equal(t, "NewGreeter", sym.Name)
}

func TestGoSourceUnknownSymbol(t *testing.T) {
	r := NewGoSource(context.Background())
	_, err := r.Resolve("./testdata/example.NoSuchThing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoSourceUnknownMember(t *testing.T) {
	r := NewGoSource(context.Background())
	_, err := r.Resolve("./testdata/example.Greeter.Nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoSourceUnknownPackage(t *testing.T) {
	r := NewGoSource(context.Background())
	_, err := r.Resolve("no/such/pkg.Thing")
	assert.Error(t, err)
}

func TestLastTwo(t *testing.T) {
	assert.Equal(t, "Greeter.Greet", LastTwo("pkg.mod.Greeter.Greet"))
	assert.Equal(t, "Greeter", LastTwo("Greeter"))
	assert.Equal(t, "mod.Greeter", LastTwo("mod.Greeter"))
}
