// Package token defines the flat lexical units the scanner emits (§3,
// §4.2) as a tagged sum type, following the same `kind()` marker-method
// idiom well/syntax/ast.go uses for its node types.
package token

import "github.com/siadat/grapheme/position"

// Kind identifies which concrete Token (or, later, ast.Elem) variant a
// value is, mirroring well/syntax/token.Token's enum but scoped to this
// grammar's token set.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindVariable
	KindComma
	KindParen
	KindFunction
	KindOperator
	KindPropertyAccess
	KindColon
	KindTypename
	KindArrowFunction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindVariable:
		return "variable"
	case KindComma:
		return "comma"
	case KindParen:
		return "paren"
	case KindFunction:
		return "function_token"
	case KindOperator:
		return "operator_token"
	case KindPropertyAccess:
		return "property_access"
	case KindColon:
		return "colon"
	case KindTypename:
		return "typename"
	case KindArrowFunction:
		return "arrow_function_token"
	default:
		return "unknown_token"
	}
}

// StringSource records why a String token/node exists, per §3's `src`
// field: a literal appearing in source, a property name folded into a
// string by the property-access pass, or an operator spelling folded
// into a string by the chained-comparison pass.
type StringSource int

const (
	SrcLiteral StringSource = iota
	SrcPropertyAccess
	SrcOperator
)

func (s StringSource) String() string {
	switch s {
	case SrcLiteral:
		return "literal"
	case SrcPropertyAccess:
		return "property_access"
	case SrcOperator:
		return "operator"
	default:
		return "unknown_src"
	}
}

// QuoteKind records the delimiter a string literal used, per §3's
// `quote` field; `QuoteNone` is used for strings synthesized by later
// passes (property names, operator spellings) which were never quoted.
type QuoteKind int

const (
	QuoteNone QuoteKind = iota
	QuoteDouble
	QuoteSingle
)

func (q QuoteKind) String() string {
	switch q {
	case QuoteDouble:
		return "double"
	case QuoteSingle:
		return "single"
	default:
		return "none"
	}
}

// Token is implemented by every concrete token type the scanner emits.
// Index is the position of the token's first character.
type Token interface {
	Kind() Kind
	Index() position.Pos
	isToken()
}

// Number is a numeric literal token; Value is the raw, unparsed lexeme
// (spec §3: numeric values are retained as strings, not parsed here).
type Number struct {
	At    position.Pos
	Value string
}

func (t *Number) Kind() Kind            { return KindNumber }
func (t *Number) Index() position.Pos   { return t.At }
func (t *Number) isToken()              {}
func (t *Number) EndIndex() position.Pos {
	return t.At + position.Pos(len(t.Value)) - 1
}

// String is a string-literal token. Contents is NOT unescaped here — it
// is the raw text between the delimiters, escape sequences retained
// verbatim, since the spec treats
// escape processing as a later-stage/evaluation concern; the scanner's
// only job is to find where the literal ends.
type String struct {
	At       position.Pos
	Contents string
	Src      StringSource
	Quote    QuoteKind
}

func (t *String) Kind() Kind          { return KindString }
func (t *String) Index() position.Pos { return t.At }
func (t *String) isToken()            {}
func (t *String) EndIndex() position.Pos {
	switch t.Quote {
	case QuoteDouble, QuoteSingle:
		return t.At + position.Pos(len(t.Contents)) + 1
	default:
		return t.At + position.Pos(len(t.Contents)) - 1
	}
}

// Variable is an identifier token, possibly namespaced (`a::b::c`) and
// possibly carrying a template specialization (`name::<T1, T2>`) folded
// directly into Name.
type Variable struct {
	At   position.Pos
	Name string
}

func (t *Variable) Kind() Kind            { return KindVariable }
func (t *Variable) Index() position.Pos   { return t.At }
func (t *Variable) isToken()              {}
func (t *Variable) EndIndex() position.Pos { return t.At + position.Pos(len(t.Name)) - 1 }

// Comma is a single `,` token.
type Comma struct {
	At position.Pos
}

func (t *Comma) Kind() Kind          { return KindComma }
func (t *Comma) Index() position.Pos { return t.At }
func (t *Comma) isToken()            {}

// Paren is one of `(` `)` `[` `]` `|`. Opening and PairID are assigned
// by the bracket balancer (§4.3), not the scanner; they are zero-valued
// (Opening=false, PairID=0) until then.
type Paren struct {
	At      position.Pos
	Ch      byte
	Opening bool
	PairID  int
}

func (t *Paren) Kind() Kind          { return KindParen }
func (t *Paren) Index() position.Pos { return t.At }
func (t *Paren) isToken()            {}

// Function is a function-name token (the name may include a template
// specialization), emitted only when the scanner finds `(` immediately
// following a variable-shaped name.
type Function struct {
	At   position.Pos
	Name string
}

func (t *Function) Kind() Kind            { return KindFunction }
func (t *Function) Index() position.Pos   { return t.At }
func (t *Function) isToken()              {}
func (t *Function) EndIndex() position.Pos {
	return t.At + position.Pos(len(t.Name)) - 1
}

// Operator is an operator occurrence. Implicit marks a synthetic `*`
// inserted by the implicit-multiplication pass (§4.4); such tokens did
// not come from the scanner.
type Operator struct {
	At       position.Pos
	Op       string
	Implicit bool
}

func (t *Operator) Kind() Kind          { return KindOperator }
func (t *Operator) Index() position.Pos { return t.At }
func (t *Operator) isToken()            {}

// PropertyAccess is a `.name` token.
type PropertyAccess struct {
	At   position.Pos
	Prop string
}

func (t *PropertyAccess) Kind() Kind          { return KindPropertyAccess }
func (t *PropertyAccess) Index() position.Pos { return t.At }
func (t *PropertyAccess) isToken()            {}

// Colon is a bare `:` token (type-annotation separator).
type Colon struct {
	At position.Pos
}

func (t *Colon) Kind() Kind          { return KindColon }
func (t *Colon) Index() position.Pos { return t.At }
func (t *Colon) isToken()            {}

// Typename is a type name appearing after a `:` (may include a template
// specialization).
type Typename struct {
	At       position.Pos
	Typename string
}

func (t *Typename) Kind() Kind          { return KindTypename }
func (t *Typename) Index() position.Pos { return t.At }
func (t *Typename) isToken()            {}

// ArrowFunction is a literal `->` token.
type ArrowFunction struct {
	At position.Pos
}

func (t *ArrowFunction) Kind() Kind          { return KindArrowFunction }
func (t *ArrowFunction) Index() position.Pos { return t.At }
func (t *ArrowFunction) isToken()            {}

// IsOperand reports whether a token of this kind is a syntactically
// valid operand for a unary/binary/postfix operator: "An operand is
// valid unless it is one of: comma, paren, function_token,
// operator_token, property_access, colon, typename,
// arrow_function_token" (§4.6 step G). The builder only consults this
// for items still in token form; anything already collapsed into a
// tree node (ast.Group, ast.Function, ast.Operator, ast.TypeAnnotation,
// ast.ArrowFunction, or a bare leaf token re-used as a node) is always
// a valid operand.
func IsOperand(k Kind) bool {
	switch k {
	case KindNumber, KindVariable, KindString:
		return true
	default:
		return false
	}
}
