// Package traversal implements the iterative, stack-based tree walk
// every tree-building pass in builder uses (section 4.5). It is
// deliberately non-recursive: Go's goroutine stacks are not unbounded,
// and a deeply nested expression (thousands of parens deep) must not
// blow it. There is no teacher file to ground the control flow on —
// well's own ast walks are simple recursive switches — so this follows
// the explicit two-stack (node, child-index) pattern spec'd in
// section 4.5 directly.
package traversal

import (
	"fmt"

	"github.com/siadat/grapheme/ast"
)

// Order selects pre-order (visit a node before its children) or
// post-order (visit a node after its children) delivery.
type Order int

const (
	PreOrder Order = iota
	PostOrder
)

// CyclicalError is raised when checkCycles is enabled and a node
// reappears as its own descendant.
type CyclicalError struct {
	Node ast.Item
}

func (e *CyclicalError) Error() string {
	return fmt.Sprintf("cyclical tree detected at node %T (index %d)", e.Node, e.Node.Index())
}

// Options configures a single Walk call.
type Options struct {
	Order                 Order
	RTL                   bool // iterate each child list right-to-left
	OnlyNodesWithChildren bool // skip leaf items (tokens, leaf nodes)
	MaxDepth              int  // 0 means unbounded
	CheckCycles           bool
}

// Visit is called once per visited item, in the order Options
// requests. parent is nil for the root. Returning an error aborts the
// walk and Walk returns that error.
type Visit func(item ast.Item, parent ast.Item, depth int) error

type frame struct {
	parent   ast.Parent
	children []ast.Item
	index    int // next child to push
	depth    int
}

// Walk traverses root iteratively, visiting every item reachable
// through ast.Parent.ChildList. It never recurses, so the depth of the
// tree is bounded only by available heap memory.
func Walk(root ast.Item, opts Options, visit Visit) error {
	if root == nil {
		return nil
	}

	// grandparent[i] holds the item that is the parent of stack[i].parent
	// (nil for the synthetic outermost frame), so a frame can be
	// post-order-visited with the right parent after it's popped.
	var grandparent = []ast.Item{nil}
	var ancestors []ast.Item // only populated when CheckCycles is set
	var stack = []frame{{children: []ast.Item{root}, depth: 0}}

	for len(stack) > 0 {
		var top = &stack[len(stack)-1]

		if top.index >= len(top.children) {
			if top.parent != nil && opts.Order == PostOrder {
				if err := visitItem(visit, top.parent, grandparent[len(grandparent)-1], top.depth-1, opts); err != nil {
					return err
				}
			}
			if opts.CheckCycles && top.parent != nil {
				ancestors = ancestors[:len(ancestors)-1]
			}
			stack = stack[:len(stack)-1]
			grandparent = grandparent[:len(grandparent)-1]
			continue
		}

		var item = top.children[top.index]
		top.index++

		if opts.MaxDepth > 0 && top.depth > opts.MaxDepth {
			return fmt.Errorf("traversal exceeded max depth %d", opts.MaxDepth)
		}

		if opts.CheckCycles {
			for _, a := range ancestors {
				if a == item {
					return &CyclicalError{Node: item}
				}
			}
		}

		var parentItem = top.parent

		if opts.Order == PreOrder {
			if err := visitItem(visit, item, parentItem, top.depth, opts); err != nil {
				return err
			}
		}

		if p, ok := item.(ast.Parent); ok {
			var kids = p.ChildList()
			if opts.RTL {
				kids = reversed(kids)
			}
			if opts.CheckCycles {
				ancestors = append(ancestors, item)
			}
			stack = append(stack, frame{parent: p, children: kids, depth: top.depth + 1})
			grandparent = append(grandparent, parentItem)
		} else if opts.Order == PostOrder {
			if err := visitItem(visit, item, parentItem, top.depth, opts); err != nil {
				return err
			}
		}
	}

	return nil
}

func visitItem(visit Visit, item ast.Item, parent ast.Item, depth int, opts Options) error {
	if opts.OnlyNodesWithChildren {
		if _, ok := item.(ast.Parent); !ok {
			return nil
		}
	}
	return visit(item, parent, depth)
}

func reversed(items []ast.Item) []ast.Item {
	var out = make([]ast.Item, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}
