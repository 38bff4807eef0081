package identscan

import (
	"go/ast"
	"go/token"

	"github.com/erraggy/namecase/convention"
	"github.com/erraggy/namecase/internal/issues"
	"golang.org/x/tools/go/ast/inspector"
)

var declNodes = []ast.Node{
	(*ast.FuncDecl)(nil),
	(*ast.GenDecl)(nil),
	(*ast.TypeSpec)(nil),
	(*ast.Field)(nil),
}

// collect returns the identifiers declared in f, in source order.
func collect(fset *token.FileSet, path string, f *ast.File) []Identifier {
	var out []Identifier
	add := func(ident *ast.Ident, kind Kind, owner string) {
		if ident == nil || ident.Name == "_" {
			return
		}
		pos := fset.Position(ident.Pos())
		out = append(out, Identifier{
			Name:        ident.Name,
			Path:        issues.FormatPath(owner, ident.Name),
			Kind:        kind,
			Exported:    ident.IsExported(),
			Conventions: convention.Detect(ident.Name),
			File:        path,
			Line:        pos.Line,
			Column:      pos.Column,
		})
	}

	in := inspector.New([]*ast.File{f})
	in.WithStack(declNodes, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		switch n := n.(type) {
		case *ast.FuncDecl:
			if n.Recv != nil && len(n.Recv.List) > 0 {
				add(n.Name, KindMethod, receiverName(n.Recv.List[0].Type))
			} else {
				add(n.Name, KindFunc, "")
			}
		case *ast.TypeSpec:
			add(n.Name, KindType, "")
		case *ast.GenDecl:
			// Only package-level constants and variables: [*ast.File, *ast.GenDecl].
			if len(stack) != 2 || (n.Tok != token.CONST && n.Tok != token.VAR) {
				return true
			}
			kind := KindVar
			if n.Tok == token.CONST {
				kind = KindConst
			}
			for _, spec := range n.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, name := range vs.Names {
						add(name, kind, "")
					}
				}
			}
		case *ast.Field:
			if len(stack) < 3 {
				return true
			}
			if _, ok := stack[len(stack)-2].(*ast.FieldList); !ok {
				return true
			}
			var kind Kind
			switch stack[len(stack)-3].(type) {
			case *ast.StructType:
				kind = KindField
			case *ast.InterfaceType:
				kind = KindMethod
			default:
				return true
			}
			owner := enclosingTypeName(stack)
			for _, name := range n.Names {
				add(name, kind, owner)
			}
		}
		return true
	})

	return out
}

// receiverName returns the base type name of a method receiver expression.
func receiverName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e.Name
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		default:
			return ""
		}
	}
}

// enclosingTypeName returns the name of the innermost type declaration on the
// stack, or "" for anonymous types outside any declaration.
func enclosingTypeName(stack []ast.Node) string {
	for i := len(stack) - 1; i >= 0; i-- {
		if ts, ok := stack[i].(*ast.TypeSpec); ok {
			return ts.Name.Name
		}
	}
	return ""
}
