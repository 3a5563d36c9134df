package binarytree

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

type dotNode struct {
	graph.Node
	label string
}

func (n *dotNode) DOTID() string {
	return fmt.Sprintf("n%d", n.ID())
}

func (n *dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: n.label}}
}

type dotEdge struct {
	simple.Edge
	side string
}

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: e.side}}
}

// MarshalDOT renders the tree as a Graphviz graph starting with "strict digraph <name> {". Every
// node is labeled with its value, every edge with the side (L or R) of the child it points to.
func MarshalDOT[E any](root *Node[E], name string) ([]byte, error) {
	g := simple.NewDirectedGraph()
	if root != nil {
		addDOTSubtree(g, root)
	}

	b, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal tree %q to DOT", name)
	}

	return b, nil
}

func addDOTSubtree[E any](g *simple.DirectedGraph, n *Node[E]) *dotNode {
	parent := &dotNode{Node: g.NewNode(), label: fmt.Sprint(n.value)}
	g.AddNode(parent)

	if n.left != nil {
		child := addDOTSubtree(g, n.left)
		g.SetEdge(dotEdge{Edge: simple.Edge{F: parent, T: child}, side: "L"})
	}
	if n.right != nil {
		child := addDOTSubtree(g, n.right)
		g.SetEdge(dotEdge{Edge: simple.Edge{F: parent, T: child}, side: "R"})
	}

	return parent
}
