// Package scanner consumes source text once and emits the flat token
// sequence the bracket balancer and tree builder operate on (section
// 4.2). It follows well/syntax/strs/scanner.go's rune-cursor idiom
// (ch/pos/readPos fields, a readRune that advances one rune at a time)
// adapted to track byte offsets, since position.Pos is a byte index.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/siadat/grapheme/classify"
	"github.com/siadat/grapheme/position"
	"github.com/siadat/grapheme/token"
)

const (
	// DefaultMaxTemplateDepth is used when the caller passes <= 0.
	DefaultMaxTemplateDepth = 16
	// HardMaxTemplateDepth is the absolute ceiling regardless of
	// configuration, a backstop against pathological input.
	HardMaxTemplateDepth = 512
)

type scanner struct {
	src     string
	ch      rune
	chWidth int
	pos     int
	readPos int

	maxTemplateDepth int
}

// Scan tokenizes src in full, returning an error on the first
// unrecognized character or malformed literal (rule 9).
func Scan(src string, maxTemplateDepth int) ([]token.Token, error) {
	if maxTemplateDepth <= 0 {
		maxTemplateDepth = DefaultMaxTemplateDepth
	}
	if maxTemplateDepth > HardMaxTemplateDepth {
		maxTemplateDepth = HardMaxTemplateDepth
	}
	var s = &scanner{src: src, maxTemplateDepth: maxTemplateDepth}
	s.readRune()

	var toks []token.Token
	for {
		s.skipWhitespace()
		if s.ch == 0 {
			return toks, nil
		}
		var tok, err = s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func (s *scanner) readRune() {
	if s.readPos >= len(s.src) {
		s.pos = s.readPos
		s.ch = 0
		s.chWidth = 0
		return
	}
	var r, w = utf8.DecodeRuneInString(s.src[s.readPos:])
	s.pos = s.readPos
	s.ch = r
	s.chWidth = w
	s.readPos += w
}

func (s *scanner) peekRune() rune {
	if s.readPos >= len(s.src) {
		return 0
	}
	var r, _ = utf8.DecodeRuneInString(s.src[s.readPos:])
	return r
}

// runeAfterDoubleColon looks past a "::" (s.ch and its peek both ':')
// to the rune that follows, used to tell a namespace separator
// (`a::b`) apart from a template opener (`a::<T>`) without consuming.
func (s *scanner) runeAfterDoubleColon() rune {
	var p = s.readPos + 1 // ':' is one byte
	if p >= len(s.src) {
		return 0
	}
	var r, _ = utf8.DecodeRuneInString(s.src[p:])
	return r
}

// seekTo rewinds (or fast-forwards) the cursor to byte offset p,
// re-reading the rune there. Used by scanNumber to back out of a
// tentatively-consumed exponent.
func (s *scanner) seekTo(p int) {
	s.readPos = p
	s.readRune()
}

func (s *scanner) skipWhitespace() {
	for classify.Whitespace(s.ch) {
		s.readRune()
	}
}

func (s *scanner) next() (token.Token, error) {
	var start = s.pos
	switch {
	case s.ch == '(' || s.ch == ')' || s.ch == '[' || s.ch == ']' || s.ch == '|':
		var ch = byte(s.ch)
		s.readRune()
		return &token.Paren{At: position.Pos(start), Ch: ch}, nil

	case s.ch == ',':
		s.readRune()
		return &token.Comma{At: position.Pos(start)}, nil

	case classify.VariableStart(s.ch) || (s.ch == ':' && s.peekRune() == ':'):
		return s.scanName(start)

	case s.ch == ':':
		s.readRune()
		return &token.Colon{At: position.Pos(start)}, nil

	case s.ch == '"' || s.ch == '\'':
		return s.scanString(start)

	case classify.Digit(s.ch) || (s.ch == '.' && classify.Digit(s.peekRune())):
		return s.scanNumber(start), nil

	case s.ch == '-' && s.peekRune() == '>':
		s.readRune()
		s.readRune()
		return &token.ArrowFunction{At: position.Pos(start)}, nil

	case s.ch == '.' && classify.VariableStart(s.peekRune()):
		s.readRune()
		var prop = s.scanSimpleName()
		return &token.PropertyAccess{At: position.Pos(start), Prop: prop}, nil

	default:
		if tok, ok := s.scanOperator(start); ok {
			return tok, nil
		}
		return nil, position.New(s.src, position.Pos(start), "Unrecognized token", "")
	}
}

// scanName implements rule 2: a variable/function name, possibly
// namespaced (`a::b::c`), possibly carrying a `::<...>` template
// specialization, possibly recognized instead as the word operator
// `and`/`or`.
func (s *scanner) scanName(start int) (token.Token, error) {
	var name strings.Builder

	if s.ch == ':' {
		name.WriteString("::")
		s.readRune()
		s.readRune()
		var seg, err = s.scanSimpleNameChecked()
		if err != nil {
			return nil, err
		}
		name.WriteString(seg)
	} else {
		var seg, err = s.scanSimpleNameChecked()
		if err != nil {
			return nil, err
		}
		if (seg == "and" || seg == "or") && (s.ch == 0 || classify.Whitespace(s.ch)) {
			return &token.Operator{At: position.Pos(start), Op: seg}, nil
		}
		name.WriteString(seg)
	}

	for s.ch == ':' && s.peekRune() == ':' {
		var after = s.runeAfterDoubleColon()
		if after == '<' || !classify.VariableStart(after) {
			break
		}
		s.readRune()
		s.readRune()
		name.WriteString("::")
		var seg, err = s.scanSimpleNameChecked()
		if err != nil {
			return nil, err
		}
		name.WriteString(seg)
	}

	if s.ch == ':' && s.peekRune() == ':' {
		s.readRune()
		s.readRune()
		var tmpl, err = s.scanTemplate(start, 1)
		if err != nil {
			return nil, err
		}
		name.WriteString("::")
		name.WriteString(tmpl)
	} else if s.ch == '<' {
		return nil, position.New(s.src, position.Pos(s.pos), "Unexpected '<' after name", position.Note("did you mean '::<' to start a template specialization?"))
	}

	if s.ch == '(' {
		// The '(' itself is left unconsumed: it is scanned as its own
		// paren token next, so the bracket balancer can pair it with
		// its closer like any other paren (the tree builder's function
		// collapsing step is what later fuses the two together).
		return &token.Function{At: position.Pos(start), Name: name.String()}, nil
	}
	return &token.Variable{At: position.Pos(start), Name: name.String()}, nil
}

func (s *scanner) scanSimpleNameChecked() (string, error) {
	if !classify.VariableStart(s.ch) {
		return "", position.New(s.src, position.Pos(s.pos), "Expected an identifier", "")
	}
	return s.scanSimpleName(), nil
}

func (s *scanner) scanSimpleName() string {
	var start = s.pos
	s.readRune()
	for classify.VariableContinue(s.ch) {
		s.readRune()
	}
	return s.src[start:s.pos]
}

// scanTemplate consumes a `<...>` template-argument list starting at
// the opening `<` (the preceding `::` has already been consumed by the
// caller). depth is the nesting level of this call, checked against
// the configured maximum.
func (s *scanner) scanTemplate(start int, depth int) (string, error) {
	if depth > s.maxTemplateDepth {
		return "", position.New(s.src, position.Pos(start), "Template nesting too deep", position.Note("maximum template nesting depth is %d", s.maxTemplateDepth))
	}
	if s.ch != '<' {
		return "", position.New(s.src, position.Pos(s.pos), "Expected '<' to start template specialization", "")
	}

	var b strings.Builder
	b.WriteByte('<')
	s.readRune()

	for {
		if !classify.VariableStart(s.ch) {
			return "", position.New(s.src, position.Pos(s.pos), "Expected a type argument", "")
		}
		var argStart = s.pos
		var arg, err = s.scanSimpleNameChecked()
		if err != nil {
			return "", err
		}
		b.WriteString(arg)

		if s.ch == ':' && s.peekRune() == ':' && s.runeAfterDoubleColon() == '<' {
			s.readRune()
			s.readRune()
			var nested, nerr = s.scanTemplate(argStart, depth+1)
			if nerr != nil {
				return "", nerr
			}
			b.WriteString("::")
			b.WriteString(nested)
		}

		switch {
		case s.ch == ',':
			b.WriteByte(',')
			s.readRune()
			for classify.Whitespace(s.ch) {
				s.readRune()
			}
		case s.ch == '>':
			b.WriteByte('>')
			s.readRune()
			return b.String(), nil
		default:
			return "", position.New(s.src, position.Pos(s.pos), "Unterminated template specialization", "")
		}
	}
}

// scanString implements rule 4. Contents retains the raw text between
// the delimiters, escape sequences unresolved: `\` always toggles an
// escape flag for the following character, so `\\` is two escaped
// backslashes and `\"` does not close the literal.
func (s *scanner) scanString(start int) (token.Token, error) {
	var quoteCh = s.ch
	var quote token.QuoteKind
	if quoteCh == '"' {
		quote = token.QuoteDouble
	} else {
		quote = token.QuoteSingle
	}
	s.readRune()

	var b strings.Builder
	var escaped = false
	for {
		if s.ch == 0 {
			return nil, position.New(s.src, position.Pos(start), "Unterminated string literal", "")
		}
		switch {
		case escaped:
			b.WriteRune(s.ch)
			escaped = false
			s.readRune()
		case s.ch == '\\':
			b.WriteRune(s.ch)
			escaped = true
			s.readRune()
		case s.ch == quoteCh:
			s.readRune()
			return &token.String{At: position.Pos(start), Contents: b.String(), Src: token.SrcLiteral, Quote: quote}, nil
		default:
			b.WriteRune(s.ch)
			s.readRune()
		}
	}
}

// scanNumber implements rule 5's regex semantics
// `[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?` via direct character-by-character
// scanning rather than a regexp, so the exponent can be rolled back
// when it turns out not to have any digits (or is itself followed by
// a decimal point, e.g. `1e.5` is the number `1` followed by `e.5`).
func (s *scanner) scanNumber(start int) token.Token {
	for classify.Digit(s.ch) {
		s.readRune()
	}
	if s.ch == '.' {
		s.readRune()
		for classify.Digit(s.ch) {
			s.readRune()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		var checkpoint = s.pos
		s.readRune()
		if s.ch == '+' || s.ch == '-' {
			s.readRune()
		}
		if classify.Digit(s.ch) {
			for classify.Digit(s.ch) {
				s.readRune()
			}
		} else {
			s.seekTo(checkpoint)
		}
	}
	return &token.Number{At: position.Pos(start), Value: s.src[start:s.pos]}
}

// scanOperator implements rule 8: longest match from `+ - * / ^ ! !!
// != == = < > <= >=`, with `=` canonicalizing to `==`. The word
// operators `and`/`or` are recognized in scanName, not here, since
// they share the identifier character class.
func (s *scanner) scanOperator(start int) (token.Token, bool) {
	switch s.ch {
	case '+', '-', '*', '/', '^':
		var op = string(s.ch)
		s.readRune()
		return &token.Operator{At: position.Pos(start), Op: op}, true
	case '!':
		s.readRune()
		switch s.ch {
		case '!':
			s.readRune()
			return &token.Operator{At: position.Pos(start), Op: "!!"}, true
		case '=':
			s.readRune()
			return &token.Operator{At: position.Pos(start), Op: "!="}, true
		default:
			return &token.Operator{At: position.Pos(start), Op: "!"}, true
		}
	case '=':
		s.readRune()
		if s.ch == '=' {
			s.readRune()
		}
		return &token.Operator{At: position.Pos(start), Op: "=="}, true
	case '<':
		s.readRune()
		if s.ch == '=' {
			s.readRune()
			return &token.Operator{At: position.Pos(start), Op: "<="}, true
		}
		return &token.Operator{At: position.Pos(start), Op: "<"}, true
	case '>':
		s.readRune()
		if s.ch == '=' {
			s.readRune()
			return &token.Operator{At: position.Pos(start), Op: ">="}, true
		}
		return &token.Operator{At: position.Pos(start), Op: ">"}, true
	default:
		return nil, false
	}
}
