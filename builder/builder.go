// Package builder runs the tree-building pipeline (section 4.6): a
// fixed sequence of rewriting passes that turns a flat, balanced token
// list into a validated expression tree. There is no teacher
// equivalent — well's own parser is a conventional Pratt/recursive
// parser, not a tree-rewriting pipeline — so each pass is grounded on
// the scanner/balancer's flat-slice-walking idiom, generalized to walk
// a tree via the traversal package instead of a token slice.
//
// Every step raises errors through the same typed-panic/recover
// boundary well's erroring.CallAndRecover uses: a step calls fail(...)
// to panic with a stopBuild, and Build recovers exactly that type,
// letting any other panic (a real bug, not a rejected input) escape
// with a stack trace via position.PrintTrace.
package builder

import (
	"fmt"

	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/position"
	"github.com/siadat/grapheme/token"
)

// Options configures the parts of the pipeline that are not purely
// structural.
type Options struct {
	// MaxExpressionDepth bounds step N's depth check. Zero means
	// unbounded.
	MaxExpressionDepth int
}

// stopBuild is the panic payload every step uses to report a rejected
// input; Build recovers it and returns it as a normal error.
type stopBuild struct {
	err *position.Error
}

func (s stopBuild) Error() string { return s.err.Error() }

func fail(src string, idx position.Pos, message string, suggestion string) {
	panic(stopBuild{err: position.New(src, idx, message, suggestion)})
}

// Build runs the full pipeline over an already-balanced,
// implicit-multiplication-expanded token list, returning the
// validated root node, or nil for an empty token list.
func Build(src string, toks []token.Token, opts Options) (ast.Item, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	return position.CallAndRecover[stopBuild](func() ast.Item {
		stepA(src, toks)
		var root = stepB(toks)
		stepC(root)
		stepD(src, root)
		stepE(root)
		stepF(src, root)
		stepG(src, root)
		stepH(root)
		stepI(src, root)
		stepJ(src, root)
		unwrapSyntheticGroups(root)
		stepK(src, root)
		stepL(src, root)
		stepM(root)
		stepN(src, root, opts.MaxExpressionDepth)
		return unwrapRoot(src, root)
	})
}

// indexOf and endIndexOf read a start/end position off any item,
// falling back to Index() for the handful of token kinds that have no
// EndIndex of their own (they are all eliminated from the tree well
// before their position is needed for anything but an error message).
func indexOf(it ast.Item) position.Pos {
	return it.Index()
}

func endIndexOf(it ast.Item) position.Pos {
	if e, ok := it.(ast.Elem); ok {
		return e.EndIndex()
	}
	return it.Index()
}

// unwrapRoot discards the synthetic ParenNone wrapper step B always
// produces and returns its single remaining child — callers never see
// the wrapper itself (DESIGN.md's "§4.6 root shape" decision). A
// wrapper left with zero or more than one child is rejected here. Step
// A's pairwise scan has no check for two values side by side with no
// operator between them, so this is where such input fails (e.g. `2x`
// with implicit multiplication disabled leaves two children).
func unwrapRoot(src string, root ast.Item) ast.Item {
	group, ok := root.(*ast.Group)
	if !ok || group.Paren != ast.ParenNone {
		fail(src, root.Index(), "internal error: builder root is not the synthetic wrapper group", "")
	}
	if len(group.Items) != 1 {
		fail(src, group.At, fmt.Sprintf("internal error: root wrapper has %d children, want exactly 1", len(group.Items)), "")
	}
	return group.Items[0]
}

func parenKindOf(ch byte) ast.ParenKind {
	switch ch {
	case '(':
		return ast.ParenRound
	case '[':
		return ast.ParenBrack
	case '|':
		return ast.ParenBar
	default:
		return ast.ParenNone
	}
}

// replaceChild swaps old for new in parent's child list in place,
// round-tripping through SetChildList so the change lands correctly
// regardless of whether the concrete node aliases its child slice
// (ast.Group, ast.Function, ast.Operator) or rebuilds it on the fly
// (ast.TypeAnnotation, ast.ArrowFunction).
func replaceChild(parent ast.Parent, old ast.Item, replacement ast.Item) {
	var kids = parent.ChildList()
	for i, k := range kids {
		if k == old {
			kids[i] = replacement
			break
		}
	}
	parent.SetChildList(kids)
}

func isOpenerTok(t ast.Item) bool {
	p, ok := t.(*token.Paren)
	return ok && p.Opening
}

func isCloserTok(t ast.Item) bool {
	p, ok := t.(*token.Paren)
	return ok && !p.Opening
}

func describeItem(it ast.Item) string {
	switch v := it.(type) {
	case *token.Operator:
		return fmt.Sprintf("operator '%s'", v.Op)
	case *token.Number:
		return fmt.Sprintf("number %q", v.Value)
	case *token.Variable:
		return fmt.Sprintf("variable %q", v.Name)
	case *token.String:
		return "string literal"
	default:
		return fmt.Sprintf("%T", it)
	}
}
