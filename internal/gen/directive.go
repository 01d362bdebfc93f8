package gen

import (
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/Lzww0608/guid"
)

// Prefix starts every directive comment.
const Prefix = "//guid:"

// Kind is the form of a directive.
type Kind int

const (
	// KindAttach gives a type declaration a GUID accessor method:
	//
	//	//guid:attach 72631e54-78a4-11d0-bcf7-00aa00b7b32a
	//	type Protocol struct{}
	KindAttach Kind = iota + 1

	// KindVar declares a package-level GUID variable:
	//
	//	//guid:var IIDUnknown 00000000-0000-0000-c000-000000000046
	KindVar
)

func (k Kind) String() string {
	switch k {
	case KindAttach:
		return "attach"
	case KindVar:
		return "var"
	default:
		return "unknown"
	}
}

// Directive is a validated //guid: comment.
type Directive struct {
	Kind    Kind
	Name    string // type name for KindAttach, variable name for KindVar
	Literal string // literal text as written
	Value   guid.Guid
	Pos     token.Position
}

// Package is the result of scanning a package directory.
type Package struct {
	Name       string
	Dir        string
	Directives []Directive
}

// Scan parses the non-test Go files in dir, skipping the file named skip,
// and returns every directive in file name then source order. Any literal that
// guid.Parse rejects fails the scan.
//
// Files are selected with build.Default, so GOOS, GOARCH and build tags of
// the go generate environment apply, and //go:build ignore helpers are left
// out.
func Scan(dir, skip string) (*Package, error) {
	return ScanContext(&build.Default, dir, skip)
}

// ScanContext is Scan with an explicit build context.
func ScanContext(ctxt *build.Context, dir, skip string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read package directory")
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == skip {
			continue
		}
		ok, err := ctxt.MatchFile(dir, name)
		if err != nil {
			return nil, errors.Wrapf(err, "match %s", name)
		}
		if !ok {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)

	pkg := &Package{Dir: dir}
	fset := token.NewFileSet()
	for _, name := range files {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrap(err, "parse source")
		}
		if pkg.Name == "" {
			pkg.Name = f.Name.Name
		} else if pkg.Name != f.Name.Name {
			return nil, errors.Errorf("%s: package %s, want %s", name, f.Name.Name, pkg.Name)
		}

		ds, err := scanFile(fset, f)
		if err != nil {
			return nil, err
		}
		pkg.Directives = append(pkg.Directives, ds...)
	}
	return pkg, nil
}

func scanFile(fset *token.FileSet, f *ast.File) ([]Directive, error) {
	var out []Directive

	// attach directives bound to type declarations, by comment position
	attached := make(map[token.Pos]string)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			docs := []*ast.CommentGroup{ts.Doc}
			if len(gd.Specs) == 1 {
				docs = append(docs, gd.Doc)
			}
			for _, doc := range docs {
				if doc == nil {
					continue
				}
				for _, c := range doc.List {
					if verb, _ := split(c.Text); verb == KindAttach.String() {
						if ts.TypeParams != nil {
							return nil, errors.Errorf("%s: guid:attach on generic type %s", fset.Position(c.Pos()), ts.Name.Name)
						}
						if ts.Assign.IsValid() {
							return nil, errors.Errorf("%s: guid:attach on alias %s", fset.Position(c.Pos()), ts.Name.Name)
						}
						attached[c.Pos()] = ts.Name.Name
					}
				}
			}
		}
	}

	for _, group := range f.Comments {
		for _, c := range group.List {
			if !strings.HasPrefix(c.Text, Prefix) {
				continue
			}
			pos := fset.Position(c.Pos())
			verb, rest := split(c.Text)

			var d Directive
			switch verb {
			case KindAttach.String():
				name, ok := attached[c.Pos()]
				if !ok {
					return nil, errors.Errorf("%s: guid:attach is not in the doc comment of a type declaration", pos)
				}
				d = Directive{Kind: KindAttach, Name: name, Literal: rest}
			case KindVar.String():
				var name string
				if fields := strings.Fields(rest); len(fields) > 0 {
					name = fields[0]
				}
				lit := strings.TrimPrefix(rest, name)
				if !token.IsIdentifier(name) {
					return nil, errors.Errorf("%s: guid:var name %q is not a Go identifier", pos, name)
				}
				d = Directive{Kind: KindVar, Name: name, Literal: strings.TrimSpace(lit)}
			default:
				return nil, errors.Errorf("%s: unknown directive guid:%s", pos, verb)
			}

			if d.Literal == "" {
				return nil, errors.Errorf("%s: guid:%s has no literal", pos, verb)
			}
			v, err := guid.Parse(d.Literal)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: guid:%s %s", pos, verb, d.Name)
			}
			d.Value = v
			d.Pos = pos
			out = append(out, d)
		}
	}
	return out, nil
}

// split returns the verb and the trimmed remainder of a directive comment.
func split(text string) (verb, rest string) {
	if !strings.HasPrefix(text, Prefix) {
		return "", ""
	}
	body := strings.TrimPrefix(text, Prefix)
	i := strings.IndexFunc(body, unicode.IsSpace)
	if i < 0 {
		return body, ""
	}
	return body[:i], strings.TrimSpace(body[i:])
}
