package internalcheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var hexVerb = regexp.MustCompile(`%[-+# 0-9.]*[xX]`)

// formatArg gives the position of the format string for every printf-style
// function that may end up in an error or a log line.
var formatArg = map[string]int{
	"fmt.Errorf":  0,
	"fmt.Printf":  0,
	"fmt.Sprintf": 0,
	"fmt.Fprintf": 1,
	"log.Printf":  0,
	"log.Fatalf":  0,
	"log.Panicf":  0,

	"github.com/coinbase/cb-commit-go/pkg/commit.Errorf": 1,
}

func TestNoHexFormatting(t *testing.T) {
	check(t, "secret formatting", func(info *types.Info, n ast.Node) string {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return ""
		}
		pkgPath, name, ok := calledFunc(info, call)
		if !ok {
			return ""
		}
		idx, ok := formatArg[pkgPath+"."+name]
		if !ok || len(call.Args) <= idx {
			return ""
		}
		if format, ok := stringLiteral(call.Args[idx]); ok && hasHexVerb(format) {
			return "hex verb in " + name + " format; openings and scalars must not be printed"
		}
		return ""
	})
}

func stringLiteral(e ast.Expr) (string, bool) {
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	return s, err == nil
}

func hasHexVerb(format string) bool {
	return hexVerb.MatchString(strings.ReplaceAll(format, "%%", ""))
}

func TestHexVerbPattern(t *testing.T) {
	for _, s := range []string{"%x", "%X", "%02x", "%#x", "% x", "seed=%-8X"} {
		if !hasHexVerb(s) {
			t.Errorf("%q should be flagged", s)
		}
	}
	for _, s := range []string{"%v", "%d", "%s", "100%% exact", "%%x"} {
		if hasHexVerb(s) {
			t.Errorf("%q should not be flagged", s)
		}
	}
}
