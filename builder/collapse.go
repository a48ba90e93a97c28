package builder

import (
	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/token"
	"github.com/siadat/grapheme/traversal"
)

// stepC turns every `|x|` Group into an ast.Function named "abs" (§4.6
// step C). Post-order so an inner `||x||` closes its innermost bars
// first, which is exactly the pairing the balancer already committed to
// in step 4.3.
func stepC(root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		var group, ok = item.(*ast.Group)
		if !ok || group.Paren != ast.ParenBar {
			return nil
		}
		var fn = &ast.Function{
			At:   group.At,
			End:  group.End,
			Name: "abs",
			ParenInfo: ast.ParenInfo{
				StartIndex:  group.At,
				EndIndex:    group.End,
				VerticalBar: true,
			},
			Items: group.Items,
		}
		if p, ok := parent.(ast.Parent); ok {
			replaceChild(p, group, fn)
		}
		return nil
	})
}

// stepD is function collapsing (§4.6 step D): pre-order, because a
// function_token immediately followed by its call Group must fuse
// before we ever look inside that Group for a *nested* function_token
// + Group pair (e.g. f(g(x))'s inner g(x) only becomes visible as its
// own parent/child pair once f's argument list is walked). Within each
// parent's child list, every adjacent (function_token, Group) pair
// collapses into one ast.Function whose arguments are the Group's
// items split on top-level commas: a single-item slice stays bare, a
// multi-item slice (an argument itself still awaiting operator
// collapsing) is wrapped in a synthetic ParenNone Group so later passes
// have a child list to operate on, exactly like the step B root wrapper.
func stepD(src string, root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PreOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		var p, ok = item.(ast.Parent)
		if !ok {
			return nil
		}
		var items = p.ChildList()
		var out = make([]ast.Item, 0, len(items))
		for i := 0; i < len(items); i++ {
			var cur = items[i]
			fnTok, isFn := cur.(*token.Function)
			if !isFn {
				out = append(out, cur)
				continue
			}
			if i+1 >= len(items) {
				fail(src, fnTok.At, "internal error: function_token has no following group", "")
			}
			group, isGroup := items[i+1].(*ast.Group)
			if !isGroup {
				fail(src, fnTok.At, "internal error: function_token not followed by a group", "")
			}
			out = append(out, &ast.Function{
				At:   fnTok.At,
				End:  group.End,
				Name: fnTok.Name,
				ParenInfo: ast.ParenInfo{
					StartIndex: group.At,
					EndIndex:   group.End,
				},
				Items: splitArgs(group),
			})
			i++ // consume the group too
		}
		p.SetChildList(out)
		return nil
	})
}

// unwrapSyntheticGroups discards a synthetic ParenNone Group (built by
// splitArgs, or the step B root wrapper) once later passes have
// collapsed its contents down to a single item: the wrapper's only job
// was to give a still-flat argument or root a child list to operate
// on, and once that's down to one item it's just an extra layer — an
// actual `(x + y)` Group (ParenRound/ParenBrack/ParenBar) is left
// alone, since that one item is all the user ever wrote inside their
// own parens. Post-order so a synthetic wrapper nested inside another
// (e.g. f(g(x))'s argument slot) unwraps from the inside out. The true
// root wrapper is left for unwrapRoot to handle instead of here.
func unwrapSyntheticGroups(root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		var group, ok = item.(*ast.Group)
		if !ok || group.Paren != ast.ParenNone || len(group.Items) != 1 || parent == nil {
			return nil
		}
		if p, ok := parent.(ast.Parent); ok {
			replaceChild(p, group, group.Items[0])
		}
		return nil
	})
}

// splitArgs splits a call Group's items on top-level commas. Step A's
// comma-placement checks already ruled out empty slots (leading,
// trailing, or doubled commas), so every non-empty slice is exactly one
// argument.
func splitArgs(group *ast.Group) []ast.Item {
	if len(group.Items) == 0 {
		return nil
	}
	var args []ast.Item
	var cur []ast.Item
	var flush = func() {
		switch len(cur) {
		case 0:
			// unreachable given step A's comma guarantees
		case 1:
			args = append(args, cur[0])
		default:
			args = append(args, &ast.Group{
				At:    indexOf(cur[0]),
				End:   endIndexOf(cur[len(cur)-1]),
				Paren: ast.ParenNone,
				Items: append([]ast.Item{}, cur...),
			})
		}
		cur = nil
	}
	for _, it := range group.Items {
		if _, isComma := it.(*token.Comma); isComma {
			flush()
			continue
		}
		cur = append(cur, it)
	}
	flush()
	return args
}
