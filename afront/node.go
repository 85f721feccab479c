package afront

import (
	"math"

	"github.com/jonmaiga/advancing-front-triangulation/internal/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

// Node is a live vertex of the mesh under construction: a position, an
// outward unit normal fixed at creation, and the edges currently incident
// to it. Nodes are created and destroyed only through a SurfaceMemory.
type Node struct {
	pos     r3.Vec
	normal  r3.Vec
	edges   []*Edge
	removed bool
}

func newNode(pos, normal r3.Vec) *Node {
	assert.That(isFinite(pos), "node position is not finite")
	assert.That(isFinite(normal), "node normal is not finite")
	return &Node{pos: pos, normal: normal}
}

func isFinite(v r3.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// Pos returns the node's position.
func (n *Node) Pos() r3.Vec { return n.pos }

// Normal returns the node's fixed outward normal.
func (n *Node) Normal() r3.Vec { return n.normal }

// Edges returns the edges currently incident to the node. Callers must
// not mutate the returned slice.
func (n *Node) Edges() []*Edge { return n.edges }

// IsRemoved reports whether the node has been dropped from its owning
// SurfaceMemory. A removed node's Edges is always empty.
func (n *Node) IsRemoved() bool { return n.removed }

// HasEdgeTo reports whether the node shares an edge with o.
func (n *Node) HasEdgeTo(o *Node) bool {
	return n.EdgeTo(o) != nil
}

// EdgeTo returns the edge the node shares with o, or nil if there is
// none. It is a programmer error to ask a node for an edge to itself.
func (n *Node) EdgeTo(o *Node) *Edge {
	assert.That(o != n, "checking whether a node has an edge to itself")
	for _, e := range n.edges {
		if e.HasNode(o) {
			return e
		}
	}
	return nil
}

func (n *Node) addEdge(e *Edge) {
	n.edges = append(n.edges, e)
}

func (n *Node) removeEdge(e *Edge) {
	for i, oe := range n.edges {
		if oe == e {
			n.edges[i] = n.edges[len(n.edges)-1]
			n.edges = n.edges[:len(n.edges)-1]
			return
		}
	}
}

func (n *Node) markRemoved() {
	n.edges = nil
	n.removed = true
}
