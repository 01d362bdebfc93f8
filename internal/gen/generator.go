// Package gen implements the guidgen code generator. It finds //guid:
// directives in a package, validates their literals with guid.Parse and writes
// a Go file holding the equivalent composite literals, so GUID constants are
// fixed before the package is compiled.
package gen

import (
	"bytes"
	"context"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/internal/registry"
)

// Config controls a generator run.
type Config struct {
	Dir             string // package directory
	Output          string // generated file name, relative to Dir
	Method          string // accessor emitted for attach directives
	ImportPath      string // import path of the guid package
	Package         string // identity recorded in the registry, defaults to the package name
	AllowDuplicates bool   // allow one GUID on several symbols
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Dir:        ".",
		Output:     "guid_generated.go",
		Method:     "GUID",
		ImportPath: "github.com/Lzww0608/guid",
	}
}

// Registry records which symbol owns a GUID.
type Registry interface {
	Claim(ctx context.Context, e registry.Entry) error
}

// Generator writes the generated file for one package.
type Generator struct {
	cfg      Config
	registry Registry
	log      *logrus.Entry
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry makes the generator claim every GUID it emits in r.
func WithRegistry(r Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// WithLogger sets the logger, logrus.StandardLogger by default.
func WithLogger(l *logrus.Entry) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// New validates cfg and returns a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if !token.IsIdentifier(cfg.Method) {
		return nil, errors.Errorf("method %q is not a Go identifier", cfg.Method)
	}
	if filepath.Base(cfg.Output) != cfg.Output || !strings.HasSuffix(cfg.Output, ".go") || strings.HasSuffix(cfg.Output, "_test.go") {
		return nil, errors.Errorf("output %q must be a non-test .go file name", cfg.Output)
	}
	if cfg.ImportPath == "" {
		return nil, errors.New("import path is empty")
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}

	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return g, nil
}

// Result describes a successful run.
type Result struct {
	Path    string // written file, empty when there were no directives
	Package *Package
}

// Run scans the package, checks the directives and writes the output file.
// Nothing is written when any check fails.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	out := filepath.Join(g.cfg.Dir, g.cfg.Output)
	log := g.log.WithField("dir", g.cfg.Dir)

	pkg, err := Scan(g.cfg.Dir, g.cfg.Output)
	if err != nil {
		return nil, err
	}
	log = log.WithField("package", pkg.Name)

	if err := g.check(pkg); err != nil {
		return nil, err
	}

	if len(pkg.Directives) == 0 {
		log.Debug("no guid directives")
		return &Result{Package: pkg}, removeStale(out)
	}

	if err := checkOwned(out); err != nil {
		return nil, err
	}

	src, err := Render(pkg, g.cfg.ImportPath, g.cfg.Method)
	if err != nil {
		return nil, err
	}

	// Claims are committed one at a time. A failed run may leave earlier
	// claims behind; claiming them again for the same owner is a no-op.
	if g.registry != nil {
		owner := g.cfg.Package
		if owner == "" {
			owner = pkg.Name
		}
		for _, d := range pkg.Directives {
			e := registry.Entry{Guid: d.Value, Package: owner, Symbol: d.Name}
			if err := g.registry.Claim(ctx, e); err != nil {
				return nil, errors.Wrapf(err, "%s: claim %s", d.Pos, d.Value)
			}
		}
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return nil, errors.Wrap(err, "write generated file")
	}

	for _, d := range pkg.Directives {
		log.WithFields(logrus.Fields{
			"symbol": d.Name,
			"guid":   d.Value.String(),
			"kind":   d.Kind.String(),
		}).Debug("emitted")
	}
	log.WithField("file", out).Infof("generated %d guid declarations", len(pkg.Directives))
	return &Result{Path: out, Package: pkg}, nil
}

// check rejects symbols declared twice and, unless allowed, a GUID used by
// more than one symbol.
func (g *Generator) check(pkg *Package) error {
	names := make(map[string]Directive)
	values := make(map[guid.Guid]Directive)
	for _, d := range pkg.Directives {
		key := d.Kind.String() + " " + d.Name
		if prev, ok := names[key]; ok {
			return errors.Errorf("%s: guid:%s %s already declared at %s", d.Pos, d.Kind, d.Name, prev.Pos)
		}
		names[key] = d

		if prev, ok := values[d.Value]; ok {
			if !g.cfg.AllowDuplicates {
				return errors.Errorf("%s: %s is already used by %s at %s", d.Pos, d.Value, prev.Name, prev.Pos)
			}
			g.log.WithFields(logrus.Fields{
				"guid":   d.Value.String(),
				"symbol": d.Name,
				"first":  prev.Name,
			}).Warn("duplicate guid")
			continue
		}
		values[d.Value] = d
	}
	return nil
}

// checkOwned fails if path exists and was not written by guidgen.
func checkOwned(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read previous output")
	}
	if !bytes.HasPrefix(data, []byte(Header)) {
		return errors.Errorf("%s exists and was not generated by guidgen", path)
	}
	return nil
}

// removeStale deletes a previously generated file that no longer has content.
func removeStale(path string) error {
	if err := checkOwned(path); err != nil {
		return err
	}
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return errors.Wrap(err, "remove stale output")
}
