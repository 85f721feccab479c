package afront

import "github.com/jonmaiga/advancing-front-triangulation/internal/assert"

// Edge is a live boundary segment between two nodes. It starts out on
// the front (unused); once popped and processed it is marked used -
// either because it closed into a triangle, or because a node collapse
// is holding it until SurfaceMemory.Requeue puts it back on the front.
type Edge struct {
	a, b *Node
	used bool
}

func newEdge(a, b *Node) *Edge {
	return &Edge{a: a, b: b}
}

// A returns the edge's first endpoint.
func (e *Edge) A() *Node { return e.a }

// B returns the edge's second endpoint.
func (e *Edge) B() *Node { return e.b }

// IsUsed reports whether the edge has been marked used since it was last
// pushed: popped and processed, consumed by a closing triangle, or
// detached by a node collapse.
func (e *Edge) IsUsed() bool { return e.used }

func (e *Edge) use() { e.used = true }

func (e *Edge) reuse() {
	assert.That(e.used, "reusing an edge that was never marked used")
	e.used = false
}

// HasCommonNode reports whether the edge shares an endpoint with o.
func (e *Edge) HasCommonNode(o *Edge) bool {
	return e.CommonNode(o) != nil
}

// CommonNode returns the endpoint the edge shares with o, or nil if the
// two edges don't share one.
func (e *Edge) CommonNode(o *Edge) *Node {
	if e.a == o.a || e.a == o.b {
		return e.a
	}
	if e.b == o.a || e.b == o.b {
		return e.b
	}
	return nil
}

// Other returns the edge's endpoint other than n. It is a programmer
// error to call it with a node that isn't one of the edge's endpoints.
func (e *Edge) Other(n *Node) *Node {
	switch n {
	case e.a:
		return e.b
	case e.b:
		return e.a
	default:
		assert.Never("node is not an endpoint of this edge")
		return nil
	}
}

// OtherNode returns the endpoint of o's common node with the edge, i.e.
// the node at the far end of o from wherever it touches the edge. It is
// a programmer error to call it with an edge that shares no node.
func (e *Edge) OtherNode(o *Edge) *Node {
	common := e.CommonNode(o)
	assert.That(common != nil, "edges share no common node")
	return o.Other(common)
}

// HasNode reports whether n is one of the edge's endpoints.
func (e *Edge) HasNode(n *Node) bool {
	return e.a == n || e.b == n
}
