package balancer_test

import (
	"strings"
	"testing"

	"github.com/siadat/grapheme/balancer"
	"github.com/siadat/grapheme/scanner"
	"github.com/siadat/grapheme/token"
)

func parens(t *testing.T, src string) []*token.Paren {
	t.Helper()
	var toks, err = scanner.Scan(src, 0)
	if err != nil {
		t.Fatalf("Scan(%q): %v", src, err)
	}
	if err := balancer.Balance(src, toks); err != nil {
		t.Fatalf("Balance(%q): %v", src, err)
	}
	var out []*token.Paren
	for _, tk := range toks {
		if p, ok := tk.(*token.Paren); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestBalanceSimpleParens(t *testing.T) {
	var ps = parens(t, "(x + (y))")
	if len(ps) != 4 {
		t.Fatalf("got %d parens, want 4", len(ps))
	}
	if ps[0].PairID != ps[3].PairID {
		t.Fatalf("outer parens should share a pair id, got %d and %d", ps[0].PairID, ps[3].PairID)
	}
	if ps[1].PairID != ps[2].PairID {
		t.Fatalf("inner parens should share a pair id, got %d and %d", ps[1].PairID, ps[2].PairID)
	}
	if ps[0].PairID == ps[1].PairID {
		t.Fatalf("outer and inner pairs should differ")
	}
	if !ps[0].Opening || ps[3].Opening {
		t.Fatalf("got ps[0].Opening=%v ps[3].Opening=%v, want true/false", ps[0].Opening, ps[3].Opening)
	}
}

func TestBalanceDoubleOpeningBars(t *testing.T) {
	// ||x|| is two nested opening bars then two closing bars.
	var ps = parens(t, "||x||")
	if len(ps) != 4 {
		t.Fatalf("got %d bars, want 4", len(ps))
	}
	var wantOpening = []bool{true, true, false, false}
	for i, p := range ps {
		if p.Opening != wantOpening[i] {
			t.Fatalf("bar %d: got opening=%v, want %v", i, p.Opening, wantOpening[i])
		}
	}
	if ps[0].PairID != ps[3].PairID {
		t.Fatalf("outermost bars should pair, got %d and %d", ps[0].PairID, ps[3].PairID)
	}
	if ps[1].PairID != ps[2].PairID {
		t.Fatalf("innermost bars should pair, got %d and %d", ps[1].PairID, ps[2].PairID)
	}
}

func TestBalanceOuterBarClosesNormally(t *testing.T) {
	// |3*|x|| : outer bar, 3 * |x| (nested abs), outer closer.
	var ps = parens(t, "|3*|x||")
	if len(ps) != 4 {
		t.Fatalf("got %d bars, want 4", len(ps))
	}
	var wantOpening = []bool{true, true, false, false}
	for i, p := range ps {
		if p.Opening != wantOpening[i] {
			t.Fatalf("bar %d: got opening=%v, want %v", i, p.Opening, wantOpening[i])
		}
	}
	if ps[0].PairID != ps[3].PairID {
		t.Fatalf("outer bars should pair, got %d and %d", ps[0].PairID, ps[3].PairID)
	}
	if ps[1].PairID != ps[2].PairID {
		t.Fatalf("inner bars should pair, got %d and %d", ps[1].PairID, ps[2].PairID)
	}
}

func TestBalanceUnclosedParen(t *testing.T) {
	var toks, err = scanner.Scan("(x", 0)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	err = balancer.Balance("(x", toks)
	if err == nil {
		t.Fatalf("expected an unclosed-paren error")
	}
	if !strings.Contains(err.Error(), "Unclosed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBalanceMismatchedCloser(t *testing.T) {
	var toks, err = scanner.Scan("(x]", 0)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	err = balancer.Balance("(x]", toks)
	if err == nil {
		t.Fatalf("expected a mismatched-closer error")
	}
	if !strings.Contains(err.Error(), "Mismatched") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBalanceUnmatchedCloser(t *testing.T) {
	var toks, err = scanner.Scan("x)", 0)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	err = balancer.Balance("x)", toks)
	if err == nil {
		t.Fatalf("expected an unmatched-closer error")
	}
	if !strings.Contains(err.Error(), "Unmatched") {
		t.Fatalf("unexpected error: %v", err)
	}
}
