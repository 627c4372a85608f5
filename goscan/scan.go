// Package goscan is a minimal driver that feeds wikidoc with real input: it
// walks Go source files with golang.org/x/tools/go/packages and runs
// wikidoc.Parse over every doc comment attached to a top-level declaration.
// It is deliberately thin -- one load, one walk, no rendering -- the same
// scope the teacher's own goparser package keeps for finding embed.FS calls
// (goparser/inspect.go, goparser/walk.go), just pointed at doc comments
// instead of embed.FS-producing call expressions.
package goscan

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/vippsas/docwiki/wikidoc"
)

// Comment is one parsed doc comment plus the declaration it documents and
// its source position, grounded on the teacher's own info{p, o} pairing of a
// packages.Package with the object it found (cli/cmd/sqlfs.go).
type Comment struct {
	Package string
	Decl    string
	Pos     wikidoc.FilePosition
	Raw     string
	Parsed  wikidoc.Comment
}

// Load runs packages.Load over pkgPattern (e.g. "./...") rooted at dir, the
// same packages.Config shape the teacher uses in cli/cmd/sqlfs.go.
func Load(dir, pkgPattern string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes,
		Dir:  dir,
		Fset: token.NewFileSet(),
	}
	pkgs, err := packages.Load(cfg, pkgPattern)
	if err != nil {
		return nil, fmt.Errorf("goscan: loading packages: %w", err)
	}
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return nil, fmt.Errorf("goscan: package %s: %v", p.PkgPath, p.Errors[0])
		}
	}
	return pkgs, nil
}

// Scan extracts and parses every doc comment attached to a top-level
// declaration across pkgs, one file at a time concurrently via a bounded
// errgroup -- spec.md §5's independence of concurrent Parse calls makes a
// per-file goroutine safe with no shared mutable state, unlike the teacher's
// sequential ParseFilesystems walk (sqlparser/parser.go), which has no such
// guarantee to exploit.
func Scan(ctx context.Context, pkgs []*packages.Package, reporter wikidoc.Reporter) ([]Comment, error) {
	if reporter == nil {
		reporter = wikidoc.NopReporter{}
	}

	type fileJob struct {
		pkg  *packages.Package
		file *ast.File
	}
	var jobs []fileJob
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			jobs = append(jobs, fileJob{pkg: pkg, file: file})
		}
	}

	results := make([][]Comment, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i] = scanFile(job.pkg, job.file, reporter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Comment
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func scanFile(pkg *packages.Package, file *ast.File, reporter wikidoc.Reporter) []Comment {
	var out []Comment
	for _, decl := range file.Decls {
		group, name := declDoc(decl)
		if group == nil {
			continue
		}
		position := pkg.Fset.Position(group.Pos())
		pos := wikidoc.FilePosition{File: position.Filename, Line: position.Line, Col: position.Column}
		raw := blockCommentForm(group.Text())
		parsed := wikidoc.Parse(raw, pos, reporter)
		out = append(out, Comment{
			Package: pkg.PkgPath,
			Decl:    name,
			Pos:     pos,
			Raw:     raw,
			Parsed:  parsed,
		})
	}
	return out
}

// blockCommentForm reconstructs a /** ... */ block comment from the plain
// text ast.CommentGroup.Text() returns. Text() already strips // or /* */
// markers and any per-line leading space, which is exactly what wikidoc's
// Line Cleaner expects to find and strip itself -- fed straight through, every
// line of a real, idiomatic // doc comment (the style this repo's own source
// uses, and the style scan_test.go's fixtures use) would trip the Line
// Cleaner's "no start-of-line marker" warning on every single line. Wrapping
// it back into the ' * '-per-line block form it was written to parse fixes
// that without wikidoc ever needing to know which Go comment style a
// declaration actually used.
func blockCommentForm(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range lines {
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" */")
	return b.String()
}

// declDoc returns the doc comment group and a human-readable name for any
// declaration that carries one. It covers funcs and GenDecls (types, vars,
// consts). For a GenDecl it returns the declaration's own doc when it has a
// single spec, otherwise the doc of the first spec that carries one; docs on
// later specs of a grouped declaration are not returned.
func declDoc(decl ast.Decl) (*ast.CommentGroup, string) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Doc == nil {
			return nil, ""
		}
		return d.Doc, d.Name.Name
	case *ast.GenDecl:
		if d.Doc != nil && len(d.Specs) == 1 {
			return d.Doc, specName(d.Specs[0])
		}
		for _, spec := range d.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Doc != nil {
				return ts.Doc, ts.Name.Name
			}
			if vs, ok := spec.(*ast.ValueSpec); ok && vs.Doc != nil && len(vs.Names) > 0 {
				return vs.Doc, vs.Names[0].Name
			}
		}
	}
	return nil, ""
}

func specName(spec ast.Spec) string {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		return s.Name.Name
	case *ast.ValueSpec:
		if len(s.Names) > 0 {
			return s.Names[0].Name
		}
	}
	return ""
}
