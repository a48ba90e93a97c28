package builder

import (
	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/token"
	"github.com/siadat/grapheme/traversal"
)

// stepE is property access collapsing (§4.6 step E): post-order,
// per-child-list, every (L, property_access) pair becomes a binary `.`
// Operator whose right side is a String synthesized from the property
// name (§3's `src: property_access` provenance).
func stepE(root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		var p, ok = item.(ast.Parent)
		if !ok {
			return nil
		}
		var items = p.ChildList()
		var out = make([]ast.Item, 0, len(items))
		for i := 0; i < len(items); i++ {
			if prop, isProp := items[i].(*token.PropertyAccess); isProp && len(out) > 0 {
				// The left side is the previously emitted item, so a
				// chain like a.b.c folds as (a.b).c.
				var left = out[len(out)-1]
				var name = &token.String{
					At:       prop.At + 1,
					Contents: prop.Prop,
					Src:      token.SrcPropertyAccess,
					Quote:    token.QuoteNone,
				}
				out[len(out)-1] = &ast.Operator{
					At:    indexOf(left),
					End:   endIndexOf(name),
					Op:    ".",
					Items: []ast.Item{left, name},
				}
				continue
			}
			out = append(out, items[i])
		}
		p.SetChildList(out)
		return nil
	})
}
