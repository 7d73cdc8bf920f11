package dout

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
)

// callArgText recovers the source text of the arguments of the named call
// on the caller's line by re-parsing the caller's source file. Strictly
// best effort: stripped binaries, moved sources or ambiguous lines yield
// the empty string and the annotation is simply omitted.
func callArgText(skip int, fn string) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file, src, 0)
	if err != nil {
		return ""
	}

	var text string
	ast.Inspect(parsed, func(n ast.Node) bool {
		if text != "" {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		if fset.Position(call.Lparen).Line != line || !calleeNamed(call, fn) {
			return true
		}
		start := fset.Position(call.Args[0].Pos()).Offset
		end := fset.Position(call.Args[len(call.Args)-1].End()).Offset
		if start >= 0 && end <= len(src) && start < end {
			text = strings.TrimSpace(string(src[start:end]))
		}
		return false
	})
	return text
}

func calleeNamed(call *ast.CallExpr, fn string) bool {
	switch callee := call.Fun.(type) {
	case *ast.Ident:
		return callee.Name == fn
	case *ast.SelectorExpr:
		return callee.Sel.Name == fn
	default:
		return false
	}
}
