package decl

import (
	"fmt"
	"go/ast"
	"go/parser"
)

// ParseType parses a Go type expression such as "map[string][]int".
func ParseType(src string) (ast.Expr, error) {
	e, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("parsing type %q: %w", src, err)
	}

	switch e.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.StarExpr, *ast.ArrayType, *ast.MapType,
		*ast.ChanType, *ast.FuncType, *ast.InterfaceType, *ast.StructType,
		*ast.IndexExpr, *ast.IndexListExpr, *ast.ParenExpr:
		return e, nil
	default:
		return nil, fmt.Errorf("parsing type %q: not a type expression", src)
	}
}
