package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The guard package exists to keep panics from crossing the foreign
// boundary, so it must never raise one itself: every failure is an error
// value or a slot write.
func TestNoPanicInGuardPackage(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/ffiguard/ffiguard-go/pkg/ffiguard")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			filename := fset.Position(file.Pos()).Filename
			if strings.HasSuffix(filename, "_test.go") {
				continue
			}
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				ident, ok := call.Fun.(*ast.Ident)
				if !ok || ident.Name != "panic" {
					return true
				}
				// The builtin has no package; a local function named
				// panic would shadow it and is caught all the same.
				pos := fset.Position(call.Pos())
				findings = append(findings, fmt.Sprintf("%s: panic call inside the guard package", pos))
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("no-panic policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
