package builder

import (
	"fmt"

	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/position"
	"github.com/siadat/grapheme/token"
	"github.com/siadat/grapheme/traversal"
)

// stepK rejects the two shapes of surviving ast.Group that can only
// mean a programming mistake (§4.6 step K): an empty `()` with nothing
// collapsed into it, and one still holding a bare comma — anything
// legitimately comma-separated (call arguments, parameter lists) was
// already split and consumed by steps D and J. A non-empty,
// comma-free Group (a plain `(x + y)` grouping with nothing to fold it
// into) is a perfectly ordinary final-tree node, not an error — see
// DESIGN.md's "do plain groups survive?" decision.
func stepK(src string, root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		var group, ok = item.(*ast.Group)
		if !ok {
			return nil
		}
		if len(group.Items) == 0 {
			fail(src, group.At, "empty parentheses", "")
		}
		for _, it := range group.Items {
			if _, isComma := it.(*token.Comma); isComma {
				fail(src, indexOf(it), "stray ',' in a parenthesized expression", "")
			}
		}
		return nil
	})
}

// stepL is the residual-token check (§4.6 step L): after every
// collapsing pass has run, nothing of token kind should remain
// anywhere in the tree except the leaf kinds the tree legitimately
// ends on (number, string, variable), and no ast.TypeAnnotation should
// survive outside of being consumed by step J — every annotation that
// reaches here was never picked up by an arrow function and is as much
// a mistake as a stray comma. This walks the whole tree, not just the
// top level, since a residual token or annotation can be buried inside
// a function argument or operand.
func stepL(src string, root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PreOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		switch v := item.(type) {
		case *ast.TypeAnnotation:
			fail(src, v.At, "type annotation is only valid as an arrow function parameter", "")
		case token.Token:
			switch v.Kind() {
			case token.KindNumber, token.KindString, token.KindVariable:
				return nil
			default:
				fail(src, v.Index(), fmt.Sprintf("internal error: residual %s in finished tree", v.Kind()), "")
			}
		}
		return nil
	})
}

// stepM fills in any At/End that a node carries as position.NoPos
// (§4.6 step M), from its first and last child. Every composite node
// already computes its own span when it's built, so in practice this is
// a backstop, not live machinery. A field left at its Go zero value is
// position 0, a valid index, and is not detected or changed here.
func stepM(root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		p, ok := item.(ast.Parent)
		if !ok {
			return nil
		}
		var kids = p.ChildList()
		if len(kids) == 0 {
			return nil
		}
		if needsIndex(item) {
			setIndex(item, indexOf(kids[0]))
		}
		if needsEndIndex(item) {
			setEndIndex(item, endIndexOf(kids[len(kids)-1]))
		}
		return nil
	})
}

func needsIndex(item ast.Item) bool  { return item.Index() == position.NoPos }
func needsEndIndex(item ast.Item) bool {
	e, ok := item.(ast.Elem)
	return ok && e.EndIndex() == position.NoPos
}

func setIndex(item ast.Item, idx position.Pos) {
	switch v := item.(type) {
	case *ast.Group:
		v.At = idx
	case *ast.Function:
		v.At = idx
	case *ast.Operator:
		v.At = idx
	case *ast.TypeAnnotation:
		v.At = idx
	case *ast.ArrowFunction:
		v.At = idx
	}
}

func setEndIndex(item ast.Item, idx position.Pos) {
	switch v := item.(type) {
	case *ast.Group:
		v.End = idx
	case *ast.Function:
		v.End = idx
	case *ast.Operator:
		v.End = idx
	case *ast.TypeAnnotation:
		v.End = idx
	case *ast.ArrowFunction:
		v.End = idx
	}
}

// stepN is the optional overall depth check (§4.6 step N); maxDepth <=
// 0 means unbounded.
func stepN(src string, root ast.Item, maxDepth int) {
	if maxDepth <= 0 {
		return
	}
	var err = traversal.Walk(root, traversal.Options{Order: traversal.PreOrder, MaxDepth: maxDepth}, func(item ast.Item, parent ast.Item, depth int) error {
		return nil
	})
	if err != nil {
		fail(src, root.Index(), fmt.Sprintf("expression exceeds maximum nesting depth of %d", maxDepth), "")
	}
}
