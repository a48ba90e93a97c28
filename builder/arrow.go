package builder

import (
	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/position"
	"github.com/siadat/grapheme/token"
	"github.com/siadat/grapheme/traversal"
)

// stepJ collapses arrow functions (§4.6 step J): per child list, a
// right-to-left scan so curried signatures (`x -> y -> x+y`) associate
// the way spec §3 says they do — the rightmost `->` binds first,
// producing an ArrowFunction whose Body is itself an ArrowFunction,
// not the other way around.
func stepJ(src string, root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		var p, ok = item.(ast.Parent)
		if !ok {
			return nil
		}
		p.SetChildList(collapseArrows(src, p.ChildList()))
		return nil
	})
}

func collapseArrows(src string, items []ast.Item) []ast.Item {
	var out []ast.Item
	for i := len(items) - 1; i >= 0; i-- {
		var item = items[i]
		arrowTok, isArrow := item.(*token.ArrowFunction)
		if !isArrow {
			out = prepend(out, item)
			continue
		}
		if i-1 < 0 || len(out) == 0 {
			fail(src, arrowTok.At, "'->' is missing a parameter list or a body", "")
		}
		var left = items[i-1]
		var right = out[0]
		var fn = buildArrowFunction(src, left, right, arrowTok.At)
		out = prepend(out[1:], fn)
		i-- // consume the parameter side too
	}
	return out
}

func buildArrowFunction(src string, left ast.Item, body ast.Item, arrowAt position.Pos) *ast.ArrowFunction {
	var sig ast.ArrowSignature
	switch l := left.(type) {
	case *token.Variable:
		sig.Vars = []*token.Variable{l}
		sig.Types = []string{"real"}
	case *ast.Group:
		sig.Vars, sig.Types = signatureFromGroup(src, l)
	case *ast.TypeAnnotation:
		switch inner := l.Expr.(type) {
		case *ast.Group:
			sig.Vars, sig.Types = signatureFromGroup(src, inner)
			var returnType = l.Typename
			sig.ReturnType = &returnType
		default:
			fail(src, indexOf(left), "'v: T -> ...' without parens is ambiguous, wrap the parameter in parens", "")
		}
	default:
		fail(src, indexOf(left), "invalid arrow function parameter", "")
	}
	return &ast.ArrowFunction{
		At:         indexOf(left),
		End:        endIndexOf(body),
		Signature:  sig,
		Body:       body,
		ArrowIndex: arrowAt,
	}
}

// signatureFromGroup reads a parenthesized parameter list, one entry
// per comma-split slot (reusing the same split step D's splitArgs
// uses), each slot either a bare *token.Variable or a
// *ast.TypeAnnotation wrapping one. An untyped slot defaults to "real"
// (§3: the implicit parameter type), so Types always comes back the
// same length as Vars.
func signatureFromGroup(src string, group *ast.Group) ([]*token.Variable, []string) {
	var parts = splitArgs(group)
	var vars []*token.Variable
	var types []string
	for _, part := range parts {
		switch v := part.(type) {
		case *token.Variable:
			vars = append(vars, v)
			types = append(types, "real")
		case *ast.TypeAnnotation:
			variable, isVar := v.Expr.(*token.Variable)
			if !isVar {
				fail(src, indexOf(part), "arrow function parameter must be a variable", "")
			}
			vars = append(vars, variable)
			types = append(types, v.Typename)
		default:
			fail(src, indexOf(part), "invalid arrow function parameter", "")
		}
	}
	return vars, types
}
