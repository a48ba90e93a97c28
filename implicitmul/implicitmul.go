// Package implicitmul inserts synthetic multiplication operators
// between adjacent "value-like" tokens (section 4.4), e.g. `2x` or
// `(a+b)(c+d)`. It is optional and runs after the bracket balancer so
// it can tell an opening paren/bracket/bar from a closing one. There is
// no teacher equivalent (well has no implicit multiplication); this is
// grounded on the same flat-token-slice-rebuild idiom the scanner and
// balancer use.
package implicitmul

import (
	"github.com/siadat/grapheme/token"
)

// Insert returns a new token slice with a synthetic operator_token
// (`implicit: true`) inserted between every adjacent pair (A, B) where
// A is a number, variable, closing paren/bracket, or closing bar, and
// B is an opening paren (not `[`), opening bar, number, variable, or
// function_token.
func Insert(toks []token.Token) []token.Token {
	if len(toks) < 2 {
		return toks
	}
	var out = make([]token.Token, 0, len(toks)+len(toks)/2)
	out = append(out, toks[0])
	for i := 1; i < len(toks); i++ {
		var a, b = toks[i-1], toks[i]
		if isLeftValue(a) && isRightValue(b) {
			out = append(out, &token.Operator{At: b.Index() - 1, Op: "*", Implicit: true})
		}
		out = append(out, b)
	}
	return out
}

func isLeftValue(t token.Token) bool {
	switch t := t.(type) {
	case *token.Number, *token.Variable:
		return true
	case *token.Paren:
		return !t.Opening && (t.Ch == ')' || t.Ch == ']' || t.Ch == '|')
	default:
		return false
	}
}

func isRightValue(t token.Token) bool {
	switch t := t.(type) {
	case *token.Number, *token.Variable, *token.Function:
		return true
	case *token.Paren:
		if t.Ch == '[' {
			// Deliberately excluded: a following `[` is a subscript
			// (`arr[3]`), not a multiplication, under current
			// tree-builder semantics.
			return false
		}
		return t.Opening && (t.Ch == '(' || t.Ch == '|')
	default:
		return false
	}
}
