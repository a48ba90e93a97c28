package builder

import (
	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/position"
	"github.com/siadat/grapheme/token"
	"github.com/siadat/grapheme/traversal"
)

// compOps is the six comparison spellings steps H and I share: step H
// folds a run of two or more of them into one `cchain` node, step I
// collapses whatever's left as an ordinary left-to-right binary.
var compOps = map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true}

// isOperand reports whether item is usable as an operand right now:
// anything already collapsed into a tree node always is, and a
// still-raw token defers to token.IsOperand (§4.6 step G).
func isOperand(it ast.Item) bool {
	if tok, ok := it.(token.Token); ok {
		return token.IsOperand(tok.Kind())
	}
	return true
}

// stepG runs phase 1's five precedence passes (§4.6 step G) against
// every parent's child list in one traversal, since the passes are
// purely local to a single list and have no cross-list ordering
// dependency: postfix `!`/`!!` (ltr), unary `+`/`-` sharing a pass with
// binary `^` (rtl), binary `*`/`/` (ltr), binary `+`/`-` (ltr), binary
// `and`/`or` (ltr).
func stepG(src string, root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		var p, ok = item.(ast.Parent)
		if !ok {
			return nil
		}
		var items = p.ChildList()
		items = collapsePostfix(items)
		items = collapseUnaryAndPow(items)
		items = collapseBinaryLTR(items, map[string]bool{"*": true, "/": true})
		items = collapseBinaryLTR(items, map[string]bool{"+": true, "-": true})
		items = collapseBinaryLTR(items, map[string]bool{"and": true, "or": true})
		p.SetChildList(items)
		return nil
	})
}

func collapsePostfix(items []ast.Item) []ast.Item {
	var out []ast.Item
	for i, it := range items {
		opTok, isOp := it.(*token.Operator)
		var rightTaken = i+1 < len(items) && isOperand(items[i+1])
		if isOp && postfixSet[opTok.Op] && len(out) > 0 && isOperand(out[len(out)-1]) && !rightTaken {
			var left = out[len(out)-1]
			out[len(out)-1] = &ast.Operator{At: indexOf(left), End: opTok.At + position.Pos(len(opTok.Op)) - 1, Op: opTok.Op, Items: []ast.Item{left}}
			continue
		}
		out = append(out, it)
	}
	return out
}

// collapseUnaryAndPow scans right to left, since both unary +/- and
// binary ^ associate right-to-left: an operator with a valid left
// operand collapses as binary `^`; one without collapses as a unary
// prefix (only +/- ever qualify, since ^ is never used that way).
func collapseUnaryAndPow(items []ast.Item) []ast.Item {
	var out []ast.Item
	for i := len(items) - 1; i >= 0; i-- {
		var item = items[i]
		opTok, isOp := item.(*token.Operator)
		if !isOp {
			out = prepend(out, item)
			continue
		}
		var hasLeft = i-1 >= 0 && isOperand(items[i-1])
		if opTok.Op == "^" && hasLeft && len(out) > 0 && isOperand(out[0]) {
			var left = items[i-1]
			var right = out[0]
			var node = &ast.Operator{At: indexOf(left), End: endIndexOf(right), Op: "^", Items: []ast.Item{left, right}}
			out = prepend(out[1:], node)
			i--
			continue
		}
		if unaryPrefixSet[opTok.Op] && !hasLeft && len(out) > 0 && isOperand(out[0]) {
			var right = out[0]
			var node = &ast.Operator{At: opTok.At, End: endIndexOf(right), Op: opTok.Op, Items: []ast.Item{right}}
			out = prepend(out[1:], node)
			continue
		}
		out = prepend(out, item)
	}
	return out
}

func prepend(list []ast.Item, item ast.Item) []ast.Item {
	return append([]ast.Item{item}, list...)
}

// collapseBinaryLTR scans left to right, folding left-associatively:
// each match consumes the already-reduced left operand at the end of
// out together with the raw token to its right.
func collapseBinaryLTR(items []ast.Item, ops map[string]bool) []ast.Item {
	var out []ast.Item
	for i := 0; i < len(items); i++ {
		var item = items[i]
		opTok, isOp := item.(*token.Operator)
		if isOp && ops[opTok.Op] && len(out) > 0 && isOperand(out[len(out)-1]) && i+1 < len(items) && isOperand(items[i+1]) {
			var left = out[len(out)-1]
			var right = items[i+1]
			out[len(out)-1] = &ast.Operator{At: indexOf(left), End: endIndexOf(right), Op: opTok.Op, Implicit: opTok.Implicit, Items: []ast.Item{left, right}}
			i++ // consume the right operand too
			continue
		}
		out = append(out, item)
	}
	return out
}

// stepH is chained-comparison collapsing (§4.6 step H): a run of two or
// more comparison operators in the same child list (`a < b < c`) folds
// into a single `cchain` node whose Items alternate operand and a
// *token.String carrying the operator spelling (§3's `src: operator`
// provenance), rather than into nested binary operators, so evaluation
// can see the whole chain at once. A lone comparison (just one operator)
// is left alone for step I.
func stepH(root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		var p, ok = item.(ast.Parent)
		if !ok {
			return nil
		}
		p.SetChildList(collapseChains(p.ChildList()))
		return nil
	})
}

func collapseChains(items []ast.Item) []ast.Item {
	var out []ast.Item
	var i = 0
	for i < len(items) {
		if !isOperand(items[i]) {
			out = append(out, items[i])
			i++
			continue
		}
		var j = i
		var count = 1
		for j+2 < len(items) {
			opTok, isOp := items[j+1].(*token.Operator)
			if !isOp || !compOps[opTok.Op] || !isOperand(items[j+2]) {
				break
			}
			j += 2
			count++
		}
		if count < 3 {
			out = append(out, items[i])
			i++
			continue
		}
		var chainItems = []ast.Item{items[i]}
		for k := i + 1; k <= j; k += 2 {
			var opTok = items[k].(*token.Operator)
			chainItems = append(chainItems, &token.String{At: opTok.At, Contents: opTok.Op, Src: token.SrcOperator, Quote: token.QuoteNone})
			chainItems = append(chainItems, items[k+1])
		}
		out = append(out, &ast.Operator{At: indexOf(items[i]), End: endIndexOf(items[j]), Op: "cchain", Items: chainItems})
		i = j + 1
	}
	return out
}

// stepI is phase 2's operator pass (§4.6 step I): whatever comparison
// operators step H left untouched (exactly one in their run) collapse
// as an ordinary left-to-right binary, same as any other step G pass.
func stepI(src string, root ast.Item) {
	traversal.Walk(root, traversal.Options{Order: traversal.PostOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		var p, ok = item.(ast.Parent)
		if !ok {
			return nil
		}
		p.SetChildList(collapseBinaryLTR(p.ChildList(), compOps))
		return nil
	})
}
