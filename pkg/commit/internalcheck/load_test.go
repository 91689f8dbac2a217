package internalcheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePattern = "github.com/coinbase/cb-commit-go/pkg/commit/..."

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// rule inspects one node and returns a non-empty message for a violation.
type rule func(info *types.Info, n ast.Node) string

// check walks every non-test file under modulePattern and fails t with one
// line per violation.
func check(t *testing.T, policy string, r rule) {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode}, modulePattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages under %s failed to load", modulePattern)
	}
	if len(pkgs) == 0 {
		t.Fatalf("no packages matched %s", modulePattern)
	}

	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				if n == nil {
					return false
				}
				if msg := r(pkg.TypesInfo, n); msg != "" {
					findings = append(findings, fmt.Sprintf("%s: %s", pkg.Fset.Position(n.Pos()), msg))
				}
				return true
			})
		}
	}
	if len(findings) > 0 {
		sort.Strings(findings)
		t.Fatalf("%s policy violation:\n%s", policy, strings.Join(findings, "\n"))
	}
}

// calledFunc resolves the package path and name of a call's target, for
// package-level functions and methods alike.
func calledFunc(info *types.Info, call *ast.CallExpr) (pkgPath, name string, ok bool) {
	var ident *ast.Ident
	switch fn := call.Fun.(type) {
	case *ast.SelectorExpr:
		ident = fn.Sel
	case *ast.Ident:
		ident = fn
	default:
		return "", "", false
	}
	obj := info.Uses[ident]
	if obj == nil || obj.Pkg() == nil {
		return "", "", false
	}
	return obj.Pkg().Path(), obj.Name(), true
}
