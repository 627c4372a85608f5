package goscan

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/vippsas/docwiki/wikidoc"
)

func parseFile(t *testing.T, src string) (*ast.File, *token.FileSet) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	require.NoError(t, err)
	return f, fset
}

func TestDeclDocFuncDecl(t *testing.T) {
	src := `package p

// Greet says hello.
func Greet() {}
`
	f, _ := parseFile(t, src)
	group, name := declDoc(f.Decls[0])
	require.NotNil(t, group)
	assert.Equal(t, "Greet", name)
	assert.Contains(t, group.Text(), "Greet says hello.")
}

func TestDeclDocTypeDecl(t *testing.T) {
	src := `package p

// Widget is a thing.
type Widget struct{}
`
	f, _ := parseFile(t, src)
	group, name := declDoc(f.Decls[0])
	require.NotNil(t, group)
	assert.Equal(t, "Widget", name)
}

func TestDeclDocReturnsNilWithoutComment(t *testing.T) {
	src := `package p

func Undocumented() {}
`
	f, _ := parseFile(t, src)
	group, _ := declDoc(f.Decls[0])
	assert.Nil(t, group)
}

func TestBlockCommentFormWrapsLinesForLineCleaner(t *testing.T) {
	got := blockCommentForm("Greets the user.\n@author Alice")
	assert.Equal(t, "/**\n * Greets the user.\n * @author Alice\n */", got)
}

func TestScanFileReconstructsSlashSlashCommentForWikidoc(t *testing.T) {
	src := `package p

// Greets the user.
//
// @author Alice
func Greet() {}
`
	f, fset := parseFile(t, src)
	pkg := &packages.Package{PkgPath: "example.com/p", Fset: fset}

	rep := &wikidoc.CollectingReporter{}
	comments := scanFile(pkg, f, rep)

	require.Len(t, comments, 1)
	for _, w := range rep.Warnings {
		assert.NotContains(t, w.Message, "no start-of-line marker")
	}

	require.Len(t, comments[0].Parsed.Authors, 1)
	assert.Equal(t, wikidoc.Text{Value: "Alice"}, comments[0].Parsed.Authors[0])
}
