package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// cgoAllowed lists the package paths permitted to import "C": the internal
// backend (the designated cgo isolation point) and example c-shared
// binaries, which are themselves foreign boundary surfaces.
func cgoAllowed(pkgPath string) bool {
	if pkgPath == "github.com/ffiguard/ffiguard-go/pkg/ffiguard/internal/backend" {
		return true
	}
	return strings.HasPrefix(pkgPath, "github.com/ffiguard/ffiguard-go/examples/")
}

func TestCgoIsolation(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/ffiguard/ffiguard-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if cgoAllowed(pkg.PkgPath) {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: cgo import outside internal/backend", pos))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
