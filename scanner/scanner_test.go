package scanner_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/siadat/grapheme/scanner"
	"github.com/siadat/grapheme/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	var toks, err = scanner.Scan(src, 0)
	if err != nil {
		t.Fatalf("Scan(%q) returned unexpected error: %v", src, err)
	}
	return toks
}

func TestScanSingleCharTokens(t *testing.T) {
	var got = scan(t, "(x, [y| ])")
	var want = []token.Token{
		&token.Paren{At: 0, Ch: '('},
		&token.Variable{At: 1, Name: "x"},
		&token.Comma{At: 2},
		&token.Paren{At: 4, Ch: '['},
		&token.Variable{At: 5, Name: "y"},
		&token.Paren{At: 6, Ch: '|'},
		&token.Paren{At: 8, Ch: ']'},
		&token.Paren{At: 9, Ch: ')'},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestScanNumbers(t *testing.T) {
	var cases = []struct {
		src  string
		want string
	}{
		{"123", "123"},
		{".5", ".5"},
		{"1.5", "1.5"},
		{"1e10", "1e10"},
		{"1E+10", "1E+10"},
		{"1e-10", "1e-10"},
		{"1e", "1"},   // no digit after e: exponent rolled back, trailing e scanned separately
		{"1e.5", "1"}, // decimal after e: exponent rolled back
	}
	for _, c := range cases {
		var toks = scan(t, c.src)
		if len(toks) == 0 {
			t.Fatalf("Scan(%q): no tokens", c.src)
		}
		if num, ok := toks[0].(*token.Number); !ok {
			t.Fatalf("Scan(%q): first token is %T, want *token.Number", c.src, toks[0])
		} else if num.Value != c.want {
			t.Fatalf("Scan(%q): got number %q, want %q", c.src, num.Value, c.want)
		}
	}
}

func TestScanNumberExponentRollback(t *testing.T) {
	var got = scan(t, "1e.5")
	var want = []token.Token{
		&token.Number{At: 0, Value: "1"},
		&token.Variable{At: 1, Name: "e"},
		&token.Number{At: 2, Value: ".5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestScanString(t *testing.T) {
	var got = scan(t, `"a\"b" + 'c\\d'`)
	var want = []token.Token{
		&token.String{At: 0, Contents: `a\"b`, Src: token.SrcLiteral, Quote: token.QuoteDouble},
		&token.Operator{At: 7, Op: "+"},
		&token.String{At: 9, Contents: `c\\d`, Src: token.SrcLiteral, Quote: token.QuoteSingle},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	var _, err = scanner.Scan(`"abc`, 0)
	if err == nil {
		t.Fatalf("expected an error for an unterminated string")
	}
	if !strings.Contains(err.Error(), "Unterminated string literal") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScanNamespacedVariableAndTemplate(t *testing.T) {
	var got = scan(t, "::a::b::<T, U::<V>>(1)")
	if len(got) != 4 {
		t.Fatalf("got %d tokens, want 4 (function, opening paren, number, closing paren): %#v", len(got), got)
	}
	var fn, ok = got[0].(*token.Function)
	if !ok {
		t.Fatalf("first token is %T, want *token.Function", got[0])
	}
	if want := "::a::b::<T,U::<V>>"; fn.Name != want {
		t.Fatalf("got function name %q, want %q", fn.Name, want)
	}
}

func TestScanBareAngleBracketAfterNameIsError(t *testing.T) {
	var _, err = scanner.Scan("Foo<Bar>", 0)
	if err == nil {
		t.Fatalf("expected an error for a bare '<' after a name")
	}
	if !strings.Contains(err.Error(), "::") {
		t.Fatalf("expected error to suggest '::', got: %v", err)
	}
}

func TestScanTemplateDepthExceeded(t *testing.T) {
	var src = "x::<" + strings.Repeat("a::<", 20) + "T" + strings.Repeat(">", 20) + ">"
	var _, err = scanner.Scan(src, 4)
	if err == nil {
		t.Fatalf("expected a template-depth error")
	}
}

func TestScanPropertyAccessVsDecimal(t *testing.T) {
	var got = scan(t, "x.y 1.5")
	var want = []token.Token{
		&token.Variable{At: 0, Name: "x"},
		&token.PropertyAccess{At: 1, Prop: "y"},
		&token.Number{At: 4, Value: "1.5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestScanArrowToken(t *testing.T) {
	var got = scan(t, "(x) -> x")
	var want = []token.Token{
		&token.Paren{At: 0, Ch: '('},
		&token.Variable{At: 1, Name: "x"},
		&token.Paren{At: 2, Ch: ')'},
		&token.ArrowFunction{At: 4},
		&token.Variable{At: 7, Name: "x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestScanOperatorsLongestMatch(t *testing.T) {
	var got = scan(t, "a <= b != c !! d == e = f")
	var ops []string
	for _, tk := range got {
		if op, ok := tk.(*token.Operator); ok {
			ops = append(ops, op.Op)
		}
	}
	var want = []string{"<=", "!=", "!!", "==", "=="}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("unexpected operators (-want +got):\n%s", diff)
	}
}

func TestScanWordOperatorsRequireTrailingWhitespace(t *testing.T) {
	var got = scan(t, "a and b")
	if _, ok := got[1].(*token.Operator); !ok {
		t.Fatalf("expected 'and' to scan as an operator, got %T", got[1])
	}

	got = scan(t, "andromeda")
	if v, ok := got[0].(*token.Variable); !ok || v.Name != "andromeda" {
		t.Fatalf("expected 'andromeda' to scan as a single variable, got %#v", got)
	}
}

func TestScanUnrecognizedToken(t *testing.T) {
	var _, err = scanner.Scan("x @ y", 0)
	if err == nil {
		t.Fatalf("expected an error for an unrecognized character")
	}
	if !strings.Contains(err.Error(), "Unrecognized token") {
		t.Fatalf("unexpected error: %v", err)
	}
}
