package builder

import (
	"fmt"

	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/token"
)

// unaryPrefixSet and postfixSet classify operator spellings by the role
// they're allowed to play with no left/right operand, per §4.6 step G's
// pass table. Shared with step A's sanity scan.
var unaryPrefixSet = map[string]bool{"+": true, "-": true}
var postfixSet = map[string]bool{"!": true, "!!": true}

// stepA is the early sanity pass (§4.6 step A): a single pairwise scan
// over the flat, balanced token list, catching the handful of local
// errors that don't need a tree: two operators in a row where the
// second can't be a prefix, an operator immediately before a closing
// bracket unless it's a postfix, a non-prefix operator opening an
// expression or subexpression, a non-postfix operator closing one,
// misplaced commas, and a property access with nothing to its left.
func stepA(src string, toks []token.Token) {
	for i := -1; i < len(toks); i++ {
		var t1, t2 ast.Item
		if i >= 0 {
			t1 = toks[i]
		}
		if i+1 < len(toks) {
			t2 = toks[i+1]
		}
		checkPair(src, t1, t2)
	}
}

func checkPair(src string, t1, t2 ast.Item) {
	op1, isOp1 := t1.(*token.Operator)
	op2, isOp2 := t2.(*token.Operator)
	_, comma1 := t1.(*token.Comma)
	_, comma2 := t2.(*token.Comma)
	_, prop2 := t2.(*token.PropertyAccess)
	var opener1 = isOpenerTok(t1)
	var closer2 = isCloserTok(t2)

	if isOp1 && isOp2 && !unaryPrefixSet[op2.Op] {
		fail(src, op2.At, fmt.Sprintf("operator '%s' cannot follow operator '%s'", op2.Op, op1.Op), "")
	}
	if isOp1 && closer2 && !postfixSet[op1.Op] {
		fail(src, op1.At, fmt.Sprintf("operator '%s' cannot precede a closing bracket", op1.Op), "")
	}
	if isOp2 && !unaryPrefixSet[op2.Op] && (t1 == nil || opener1 || comma1) {
		fail(src, op2.At, fmt.Sprintf("operator '%s' cannot start an expression", op2.Op), "")
	}
	if isOp1 && !postfixSet[op1.Op] && (t2 == nil || closer2 || comma2) {
		fail(src, op1.At, fmt.Sprintf("operator '%s' cannot end an expression", op1.Op), "")
	}
	if comma2 && (t1 == nil || opener1 || comma1) {
		fail(src, indexOf(t2), "unexpected ','", "")
	}
	if comma1 && (t2 == nil || closer2 || comma2) {
		fail(src, indexOf(t1), "unexpected ','", "")
	}
	if prop2 && (t1 == nil || opener1 || comma1 || isOp1) {
		fail(src, indexOf(t2), "property access must follow a value", "")
	}
}
