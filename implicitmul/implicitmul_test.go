package implicitmul_test

import (
	"testing"

	"github.com/siadat/grapheme/balancer"
	"github.com/siadat/grapheme/implicitmul"
	"github.com/siadat/grapheme/scanner"
	"github.com/siadat/grapheme/token"
)

func kinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	var toks, err = scanner.Scan(src, 0)
	if err != nil {
		t.Fatalf("Scan(%q): %v", src, err)
	}
	if err := balancer.Balance(src, toks); err != nil {
		t.Fatalf("Balance(%q): %v", src, err)
	}
	toks = implicitmul.Insert(toks)
	var out = make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind()
	}
	return out
}

func TestInsertBetweenNumberAndVariable(t *testing.T) {
	var got = kinds(t, "2x")
	var want = []token.Kind{token.KindNumber, token.KindOperator, token.KindVariable}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestInsertBetweenClosingParenAndOpeningParen(t *testing.T) {
	var got = kinds(t, "(a)(b)")
	var want = []token.Kind{
		token.KindParen, token.KindVariable, token.KindParen,
		token.KindOperator,
		token.KindParen, token.KindVariable, token.KindParen,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNoInsertBeforeBracket(t *testing.T) {
	// arr[3] is a subscript, not implicit multiplication.
	var got = kinds(t, "arr[3]")
	var want = []token.Kind{token.KindVariable, token.KindParen, token.KindNumber, token.KindParen}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v (expected no synthetic operator before '[')", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestInsertBetweenVariables(t *testing.T) {
	var got = kinds(t, "sin x")
	var want = []token.Kind{token.KindVariable, token.KindOperator, token.KindVariable}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInsertBeforeFunctionToken(t *testing.T) {
	var got = kinds(t, "2 f(x)")
	var want = []token.Kind{
		token.KindNumber, token.KindOperator, token.KindFunction,
		token.KindParen, token.KindVariable, token.KindParen,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
