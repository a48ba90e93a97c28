// Package balancer runs the second linear pass over the scanned token
// list (section 4.3): it assigns a shared pair id to every matching
// paren/bracket, and disambiguates vertical bars into openers and
// closers. There is no equivalent pass in well's grammar (it has no
// vertical-bar absolute-value syntax), so this is grounded on the
// scanner's general token-stream-walking idiom rather than on a single
// teacher file.
package balancer

import (
	"github.com/siadat/grapheme/position"
	"github.com/siadat/grapheme/token"
)

type frame struct {
	pairID int
	ch     byte
	index  position.Pos
}

// Balance mutates the paren tokens in toks in place, assigning PairID
// and Opening, and returns an error if any bracket or bar is left
// unmatched.
func Balance(src string, toks []token.Token) error {
	var stack []frame
	var counter int

	for i, tk := range toks {
		var p, ok = tk.(*token.Paren)
		if !ok {
			continue
		}
		switch p.Ch {
		case '(', '[':
			counter++
			p.PairID = counter
			p.Opening = true
			stack = append(stack, frame{pairID: counter, ch: p.Ch, index: p.At})
		case ')', ']':
			var want byte
			if p.Ch == ')' {
				want = '('
			} else {
				want = '['
			}
			if len(stack) == 0 {
				return position.New(src, p.At, unclosedMessage(p.Ch), "")
			}
			var top = stack[len(stack)-1]
			if top.ch != want {
				return position.New(src, p.At, mismatchMessage(top.ch, p.Ch), position.Note("opened at index %d", int(top.index)))
			}
			stack = stack[:len(stack)-1]
			p.PairID = top.pairID
			p.Opening = false
		case '|':
			if isOpeningBar(toks, i, stack) {
				counter++
				p.PairID = counter
				p.Opening = true
				stack = append(stack, frame{pairID: counter, ch: '|', index: p.At})
			} else {
				var top = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				p.PairID = top.pairID
				p.Opening = false
			}
		}
	}

	if len(stack) > 0 {
		var top = stack[0]
		return position.New(src, top.index, "Unclosed "+openerName(top.ch), "")
	}
	return nil
}

// isOpeningBar implements the "close bars as soon as semantically
// possible" rule: a `|` is an opener when the previous token is an
// operator, an opening bar, or the start of input; otherwise, if the
// stack top is an open bar, it closes that bar.
func isOpeningBar(toks []token.Token, i int, stack []frame) bool {
	if i == 0 {
		return true
	}
	switch prev := toks[i-1].(type) {
	case *token.Operator:
		return true
	case *token.Paren:
		if prev.Ch == '|' && prev.Opening {
			return true
		}
	}
	if len(stack) == 0 {
		return true
	}
	return stack[len(stack)-1].ch != '|'
}

func unclosedMessage(ch byte) string {
	switch ch {
	case ')':
		return "Unmatched ')'"
	default:
		return "Unmatched ']'"
	}
}

func mismatchMessage(openCh, closeCh byte) string {
	return "Mismatched closer '" + string(closeCh) + "' for opener '" + string(openCh) + "'"
}

func openerName(ch byte) string {
	switch ch {
	case '(':
		return "'('"
	case '[':
		return "'['"
	default:
		return "'|'"
	}
}
