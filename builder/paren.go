package builder

import (
	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/position"
	"github.com/siadat/grapheme/token"
)

// openerMark records, for a still-open bracket, where in the in-progress
// output buffer its contents begin.
type openerMark struct {
	pos int
	at  position.Pos
	kn  ast.ParenKind
}

// stepB is the parenthesization pass (§4.6 step B): a single
// left-to-right scan building one ast.Group per matched bracket pair.
// On an opener, it remembers the output buffer's current length; on the
// matching closer (found by PairID, assigned by the balancer), it
// slices the buffer back to that length and replaces the slice with a
// single Group wrapping what had accumulated since. What's left in the
// buffer at the end becomes a synthetic root Group with ParenNone,
// spec's `parenType: ε`.
func stepB(toks []token.Token) *ast.Group {
	var out []ast.Item
	var marks = map[int]openerMark{}

	for _, tk := range toks {
		paren, isParen := tk.(*token.Paren)
		if !isParen {
			out = append(out, tk)
			continue
		}
		if paren.Opening {
			marks[paren.PairID] = openerMark{pos: len(out), at: paren.At, kn: parenKindOf(paren.Ch)}
			continue
		}
		var m = marks[paren.PairID]
		var children = append([]ast.Item{}, out[m.pos:]...)
		out = out[:m.pos]
		out = append(out, &ast.Group{
			At:    m.at,
			End:   paren.At,
			Paren: m.kn,
			Items: children,
		})
	}

	var root = &ast.Group{Paren: ast.ParenNone, Items: out}
	if len(toks) > 0 {
		root.At = indexOf(toks[0])
		root.End = endIndexOf(toks[len(toks)-1])
	}
	return root
}
