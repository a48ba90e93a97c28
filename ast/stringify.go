package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/siadat/grapheme/token"
)

// ToString renders a finished (or mid-pipeline) tree back to source
// text. It is a read-back tool for tests and the `fmt` CLI subcommand,
// not a byte-for-byte formatter: parens are printed only for Group
// nodes (the user's own brackets), and a nested operator gets no parens
// of its own, so `x^(y^z)` reads back as `x ^ y ^ z`. Follows
// well/fumt.formater.format's type-switch-over-node idiom.
func ToString(item Item) string {
	switch n := item.(type) {
	case *token.Number:
		return n.Value
	case *token.Variable:
		return n.Name
	case *token.String:
		switch n.Quote {
		case token.QuoteSingle:
			return "'" + n.Contents + "'"
		case token.QuoteDouble:
			return "\"" + n.Contents + "\""
		default:
			return n.Contents
		}
	case *Group:
		var open, close = parenGlyphs(n.Paren)
		return open + joinItems(n.Items) + close
	case *Function:
		if n.ParenInfo.VerticalBar {
			return "|" + joinItems(n.Items) + "|"
		}
		return n.Name + "(" + joinItems(n.Items) + ")"
	case *Operator:
		return stringifyOperator(n)
	case *TypeAnnotation:
		return fmt.Sprintf("%s: %s", ToString(n.Expr), n.Typename)
	case *ArrowFunction:
		return fmt.Sprintf("%s -> %s", stringifySignature(n.Signature), ToString(n.Body))
	default:
		return fmt.Sprintf("(unsupported node %T)", item)
	}
}

func stringifyOperator(n *Operator) string {
	switch len(n.Items) {
	case 1:
		// Unary prefix vs postfix is disambiguated by which side the
		// operator token itself sat on before collapsing; ast.Operator
		// doesn't keep that, so the call site can tell us via Op's own
		// spelling for the handful of postfix operators (`!`, `!!`).
		if isPostfixSpelling(n.Op) {
			return ToString(n.Items[0]) + n.Op
		}
		return n.Op + ToString(n.Items[0])
	case 2:
		return fmt.Sprintf("%s %s %s", ToString(n.Items[0]), n.Op, ToString(n.Items[1]))
	default:
		// cchain: operand, op, operand, op, operand, ...
		var buf bytes.Buffer
		for i, it := range n.Items {
			if i > 0 {
				buf.WriteByte(' ')
			}
			if i%2 == 1 {
				if s, ok := it.(*token.String); ok {
					buf.WriteString(s.Contents)
				} else {
					buf.WriteString(ToString(it))
				}
			} else {
				buf.WriteString(ToString(it))
			}
		}
		return buf.String()
	}
}

func isPostfixSpelling(op string) bool {
	switch op {
	case "!", "!!":
		return true
	default:
		return false
	}
}

func stringifySignature(sig ArrowSignature) string {
	var parts []string
	for i, v := range sig.Vars {
		var part = v.Name
		if i < len(sig.Types) && sig.Types[i] != "" {
			part += ": " + sig.Types[i]
		}
		parts = append(parts, part)
	}
	var inner = strings.Join(parts, ", ")
	if sig.ReturnType != nil {
		return fmt.Sprintf("(%s): %s", inner, *sig.ReturnType)
	}
	return "(" + inner + ")"
}

func joinItems(items []Item) string {
	var parts = make([]string, len(items))
	for i, it := range items {
		parts[i] = ToString(it)
	}
	return strings.Join(parts, ", ")
}

func parenGlyphs(k ParenKind) (string, string) {
	switch k {
	case ParenRound:
		return "(", ")"
	case ParenBrack:
		return "[", "]"
	case ParenBar:
		return "|", "|"
	default:
		return "", ""
	}
}
