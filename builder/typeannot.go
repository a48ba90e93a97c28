package builder

import (
	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/token"
	"github.com/siadat/grapheme/traversal"
)

// stepF is type-annotation collapsing (§4.6 step F): post-order,
// per-child-list, a triple (e1, colon, e3) collapses into an
// ast.TypeAnnotation. The scanner never emits a typename token kind of
// its own (see DESIGN.md's "typename has no token form" decision): e3
// must be a bare *token.Variable, and its Name is copied straight into
// TypeAnnotation.Typename as a plain string, matching how
// ast.ArrowSignature.Types/ReturnType also carry typenames as plain
// spellings rather than tree nodes.
func stepF(src string, root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		var p, ok = item.(ast.Parent)
		if !ok {
			return nil
		}
		var items = p.ChildList()
		var out = make([]ast.Item, 0, len(items))
		for i := 0; i < len(items); i++ {
			if i+2 < len(items) {
				if _, isColon := items[i+1].(*token.Colon); isColon {
					typename, isVar := items[i+2].(*token.Variable)
					if !isVar {
						fail(src, indexOf(items[i+1]), "type annotation must be followed by a type name", "")
					}
					var e1 = items[i]
					if !isOperand(e1) {
						fail(src, indexOf(e1), "type annotation must follow a value", "")
					}
					out = append(out, &ast.TypeAnnotation{
						At:       indexOf(e1),
						End:      endIndexOf(typename),
						Expr:     e1,
						Typename: typename.Name,
					})
					i += 2 // consumed the colon and the typename too
					continue
				}
			}
			out = append(out, items[i])
		}
		p.SetChildList(out)
		return nil
	})
}
