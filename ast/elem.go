// Package ast defines the tree shapes the builder produces (§3, §4.6)
// and the iteration surface (ast.Parent) the traversal primitive walks.
//
// Following well/syntax/ast.go's marker-method idiom, each node kind is
// its own Go type; unlike that file (whose node()/expr() methods exist
// only to seal an interface), Item and Parent here are purely
// structural — any type with the right methods satisfies them, which
// lets token.Number/token.String/token.Variable (defined in the token
// package, see DESIGN.md's "Token/Node duality" decision) satisfy
// ast.Elem without this package needing to touch them.
package ast

import "github.com/siadat/grapheme/position"

// Item is anything that can sit in a builder child list: either a raw
// token (still present mid-pipeline) or a finished tree element. It is
// intentionally minimal so token.Token values satisfy it for free.
type Item interface {
	Index() position.Pos
}

// Elem is a finished tree element: something with both a start and an
// end position. token.Number, token.String and token.Variable satisfy
// this the moment the scanner creates them (see DESIGN.md's "Token/Node
// duality" decision); every node type in this package satisfies it too.
type Elem interface {
	Item
	EndIndex() position.Pos
}

// Parent is an Elem with children, i.e. everything the traversal
// primitive needs to recurse into. Leaf elements (numbers, strings,
// variables) simply don't implement it.
type Parent interface {
	Elem
	ChildList() []Item
	SetChildList([]Item)
}
