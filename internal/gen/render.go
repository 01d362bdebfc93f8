package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Lzww0608/guid"
)

// Header is the first line of every generated file.
const Header = "// Code generated by guidgen. DO NOT EDIT."

// Literal returns a Go composite literal that evaluates to g. qualifier is the
// name the guid package is imported under.
func Literal(qualifier string, g guid.Guid) string {
	d := g.Data4
	return fmt.Sprintf("%s.Guid{Data1: 0x%08x, Data2: 0x%04x, Data3: 0x%04x, "+
		"Data4: [8]byte{0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x}}",
		qualifier, g.Data1, g.Data2, g.Data3,
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7])
}

// Render returns the gofmt-formatted source of the generated file for pkg.
// importPath is the import path of the guid package; method names the
// accessor emitted for attach directives.
func Render(pkg *Package, importPath, method string) ([]byte, error) {
	qualifier := packageName(importPath)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n\nimport %q\n", Header, pkg.Name, importPath)

	for _, d := range pkg.Directives {
		lit := Literal(qualifier, d.Value)
		switch d.Kind {
		case KindVar:
			fmt.Fprintf(&buf, "\n// %s is the GUID %s.\nvar %s = %s\n", d.Name, d.Value, d.Name, lit)
		case KindAttach:
			fmt.Fprintf(&buf, "\n// %s returns the GUID %s attached to %s.\nfunc (%s) %s() %s.Guid {\n\treturn %s\n}\n",
				method, d.Value, d.Name, d.Name, method, qualifier, lit)
		default:
			return nil, errors.Errorf("%s: unknown directive kind %d", d.Pos, d.Kind)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format generated source")
	}
	return src, nil
}

// packageName returns the name a package is imported under by default. A
// trailing major version element such as /v2 is not part of the name.
func packageName(importPath string) string {
	dir, base := path.Split(importPath)
	if v := strings.TrimPrefix(base, "v"); v != base && dir != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 2 {
			return path.Base(strings.TrimSuffix(dir, "/"))
		}
	}
	return base
}
