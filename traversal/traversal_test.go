package traversal_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/token"
	"github.com/siadat/grapheme/traversal"
)

// buildTree constructs (1 + (2 * 3)) as nested ast.Operator nodes.
func buildTree() *ast.Operator {
	var one = &token.Number{At: 0, Value: "1"}
	var two = &token.Number{At: 1, Value: "2"}
	var three = &token.Number{At: 2, Value: "3"}
	var mul = &ast.Operator{Op: "*", Items: []ast.Item{two, three}}
	return &ast.Operator{Op: "+", Items: []ast.Item{one, mul}}
}

func TestWalkPreOrder(t *testing.T) {
	var root = buildTree()
	var visited []string
	var err = traversal.Walk(root, traversal.Options{Order: traversal.PreOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		visited = append(visited, label(item))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var want = []string{"+", "1", "*", "2", "3"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("unexpected pre-order (-want +got):\n%s", diff)
	}
}

func TestWalkPostOrder(t *testing.T) {
	var root = buildTree()
	var visited []string
	var err = traversal.Walk(root, traversal.Options{Order: traversal.PostOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		visited = append(visited, label(item))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var want = []string{"1", "2", "3", "*", "+"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("unexpected post-order (-want +got):\n%s", diff)
	}
}

func TestWalkTracksParent(t *testing.T) {
	var root = buildTree()
	var parents = map[string]string{}
	var err = traversal.Walk(root, traversal.Options{Order: traversal.PreOrder}, func(item ast.Item, parent ast.Item, depth int) error {
		if parent == nil {
			parents[label(item)] = "<nil>"
		} else {
			parents[label(item)] = label(parent)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var want = map[string]string{
		"+": "<nil>",
		"1": "+",
		"*": "+",
		"2": "*",
		"3": "*",
	}
	if diff := cmp.Diff(want, parents); diff != "" {
		t.Fatalf("unexpected parents (-want +got):\n%s", diff)
	}
}

func TestWalkOnlyNodesWithChildren(t *testing.T) {
	var root = buildTree()
	var visited []string
	var err = traversal.Walk(root, traversal.Options{Order: traversal.PreOrder, OnlyNodesWithChildren: true}, func(item ast.Item, parent ast.Item, depth int) error {
		visited = append(visited, label(item))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var want = []string{"+", "*"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("unexpected filtered walk (-want +got):\n%s", diff)
	}
}

func TestWalkRTL(t *testing.T) {
	var root = buildTree()
	var visited []string
	var err = traversal.Walk(root, traversal.Options{Order: traversal.PreOrder, RTL: true}, func(item ast.Item, parent ast.Item, depth int) error {
		visited = append(visited, label(item))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var want = []string{"+", "*", "3", "2", "1"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("unexpected rtl walk (-want +got):\n%s", diff)
	}
}

func TestWalkDetectsCycles(t *testing.T) {
	var inner = &ast.Operator{Op: "*"}
	var outer = &ast.Operator{Op: "+", Items: []ast.Item{inner}}
	inner.Items = []ast.Item{outer} // cycle

	var err = traversal.Walk(outer, traversal.Options{Order: traversal.PreOrder, CheckCycles: true}, func(item ast.Item, parent ast.Item, depth int) error {
		return nil
	})
	if _, ok := err.(*traversal.CyclicalError); !ok {
		t.Fatalf("expected *traversal.CyclicalError, got %T: %v", err, err)
	}
}

func label(item ast.Item) string {
	switch n := item.(type) {
	case *token.Number:
		return n.Value
	case *ast.Operator:
		return n.Op
	default:
		return "?"
	}
}
