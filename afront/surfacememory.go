package afront

import (
	"github.com/jonmaiga/advancing-front-triangulation/internal/assert"
	"github.com/jonmaiga/advancing-front-triangulation/spatialhash"
	"gonum.org/v1/gonum/spatial/r3"
)

// edgeQueue is a FIFO of live edges. It's a plain slice with a head
// index rather than container/list so PopEdge stays allocation free on
// the hot path; the backing array is compacted only once the drained
// prefix gets large relative to what's left.
type edgeQueue struct {
	items []*Edge
	head  int
}

func (q *edgeQueue) pushBack(e *Edge) {
	q.items = append(q.items, e)
}

func (q *edgeQueue) popFront() *Edge {
	if q.head >= len(q.items) {
		return nil
	}
	e := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append([]*Edge(nil), q.items[q.head:]...)
		q.head = 0
	}
	return e
}

func (q *edgeQueue) empty() bool {
	return q.head >= len(q.items)
}

// filter keeps only the not-yet-popped items for which keep returns
// true, preserving their relative order, and resets the head to 0.
func (q *edgeQueue) filter(keep func(*Edge) bool) {
	out := q.items[:0]
	for _, e := range q.items[q.head:] {
		if keep(e) {
			out = append(out, e)
		}
	}
	q.items = out
	q.head = 0
}

// SurfaceMemory owns the node/edge graph of one mesh under construction:
// the node and edge pools, the spatial hash used to find nearby nodes,
// and the FIFO front queue the advancing front engine drives. It notifies
// an optional MeshSink as nodes, edges and triangles come and go.
type SurfaceMemory struct {
	nodeHash *spatialhash.Hash[*Node]
	sink     MeshSink
	front    edgeQueue
	nodes    []*Node
	edges    []*Edge
}

// NewSurfaceMemory creates an empty surface memory. cellSize should be a
// small multiple of the mesh's edge length: large enough that neighbor
// queries rarely span many cells, small enough that a cell holds only a
// handful of nodes.
func NewSurfaceMemory(cellSize float64, sink MeshSink) *SurfaceMemory {
	assert.That(cellSize > 0, "spatial hash cell size must be greater than zero")
	return &SurfaceMemory{
		nodeHash: spatialhash.New[*Node](cellSize, (*Node).Pos),
		sink:     sink,
	}
}

// NodeCount returns the number of nodes in the pool, including removed
// ones that DeleteRemoved has not dropped yet.
func (m *SurfaceMemory) NodeCount() int { return len(m.nodes) }

// EdgeCount returns the number of edges in the pool, including ones with
// a removed endpoint that DeleteRemoved has not dropped yet.
func (m *SurfaceMemory) EdgeCount() int { return len(m.edges) }

// FrontEmpty reports whether the front queue has no pending edges left.
func (m *SurfaceMemory) FrontEmpty() bool { return m.front.empty() }

// Nodes returns the live nodes within r of pos.
func (m *SurfaceMemory) Nodes(pos r3.Vec, r float64) []*Node {
	return m.nodeHash.Within(pos, r)
}

// HasNodeWithin reports whether any live node lies within r of pos.
func (m *SurfaceMemory) HasNodeWithin(pos r3.Vec, r float64) bool {
	return m.nodeHash.HasWithin(pos, r)
}

// AddNode creates a new live node at pos with the given normal and
// indexes it.
func (m *SurfaceMemory) AddNode(pos, normal r3.Vec) *Node {
	n := newNode(pos, normal)
	m.nodes = append(m.nodes, n)
	m.nodeHash.Add(n)
	return n
}

// AddEdge creates an edge between a and b, puts it on the front, and
// notifies the sink. It is a programmer error for a and b to be the same
// node or to already share an edge.
func (m *SurfaceMemory) AddEdge(a, b *Node) *Edge {
	assert.That(a != b, "an edge cannot connect a node to itself")
	assert.That(!a.HasEdgeTo(b), "a and b already share an edge")
	e := newEdge(a, b)
	m.edges = append(m.edges, e)
	a.addEdge(e)
	b.addEdge(e)
	m.front.pushBack(e)
	m.notifyAddEdge(e)
	return e
}

// Requeue puts a used edge back on the front, unmarking it. It is a
// programmer error to requeue an edge that isn't currently used, or
// whose endpoints have been removed.
func (m *SurfaceMemory) Requeue(e *Edge) {
	assert.That(!e.a.removed, "requeueing an edge with a removed endpoint")
	assert.That(!e.b.removed, "requeueing an edge with a removed endpoint")
	e.reuse()
	m.front.pushBack(e)
}

// PopEdge removes and returns the edge at the head of the front, or nil
// if the front is empty.
func (m *SurfaceMemory) PopEdge() *Edge {
	return m.front.popFront()
}

// RemoveNode notifies the sink, drops n from the spatial hash, and marks
// it removed, clearing n's own adjacency list. It does not detach n's
// edges from its neighbors - callers (CollapseNode) are expected to have
// already done so.
func (m *SurfaceMemory) RemoveNode(n *Node) {
	m.notifyRemoveNode(n)
	m.nodeHash.Remove(n)
	n.markRemoved()
}

// CollapseNode removes n and, transitively, any neighbor left with no
// remaining edges once n's are gone. Any used edge whose far endpoint is
// itself adjacent to n is put back on the front, since collapsing n may
// have exposed a hole on its far side that needs retriangulating.
func (m *SurfaceMemory) CollapseNode(n *Node) {
	assert.That(!n.removed, "collapsing an already removed node")
	incident := append([]*Edge(nil), n.edges...)
	for _, e := range incident {
		e.use()
		other := e.Other(n)
		kept := other.edges[:0]
		for _, oe := range other.edges {
			if oe == e {
				continue
			}
			kept = append(kept, oe)
			if oe.IsUsed() && oe.Other(other).HasEdgeTo(n) {
				m.Requeue(oe)
			}
		}
		other.edges = kept
		if len(other.edges) == 0 {
			m.RemoveNode(other)
		}
	}
	m.RemoveNode(n)
}

// CollapseNodesInside collapses every live node within radius of center.
func (m *SurfaceMemory) CollapseNodesInside(center r3.Vec, radius float64) {
	for _, n := range m.nodeHash.Within(center, radius) {
		if !n.removed {
			m.CollapseNode(n)
		}
	}
}

// CollapseNodesOutside collapses every live node further than radius
// from center.
func (m *SurfaceMemory) CollapseNodesOutside(center r3.Vec, radius float64) {
	r2 := radius * radius
	var toCollapse []*Node
	m.nodeHash.ForEachValue(func(n *Node) {
		d := r3.Sub(n.pos, center)
		if r3.Dot(d, d) > r2 {
			toCollapse = append(toCollapse, n)
		}
	})
	for _, n := range toCollapse {
		if !n.removed {
			m.CollapseNode(n)
		}
	}
}

// CollapseNodeCellsOutside collapses every node in a spatial hash cell
// whose representative point lies further than radius from center. It's
// a coarser, cheaper cousin of CollapseNodesOutside for callers that can
// tolerate collapsing a whole cell at a time near the boundary.
func (m *SurfaceMemory) CollapseNodeCellsOutside(center r3.Vec, radius float64) {
	r2 := radius * radius
	var toCollapse []*Node
	m.nodeHash.ForEachCell(func(cell []*Node) {
		if len(cell) == 0 {
			return
		}
		d := r3.Sub(cell[0].pos, center)
		if r3.Dot(d, d) > r2 {
			toCollapse = append(toCollapse, cell...)
		}
	})
	for _, n := range toCollapse {
		if !n.removed {
			m.CollapseNode(n)
		}
	}
}

// DeleteRemoved compacts the node, edge and front pools, physically
// dropping anything marked removed. It's safe to call periodically; it
// never invalidates a live *Node or *Edge a caller is still holding.
func (m *SurfaceMemory) DeleteRemoved() {
	m.front.filter(func(e *Edge) bool { return e != nil && !e.a.removed && !e.b.removed })

	liveEdges := m.edges[:0]
	for _, e := range m.edges {
		if !e.a.removed && !e.b.removed {
			liveEdges = append(liveEdges, e)
		}
	}
	m.edges = liveEdges

	liveNodes := m.nodes[:0]
	for _, n := range m.nodes {
		if !n.removed {
			liveNodes = append(liveNodes, n)
		}
	}
	m.nodes = liveNodes
}

// Validate panics if any internal invariant doesn't hold: no unused front
// edge has a removed endpoint (used front entries are stale and skipped,
// as Step skips them), no removed node is reachable from the spatial
// hash, the live nodes' adjacency sizes sum to twice the number of live
// edges, and the live node count equals the spatial hash's node count.
// It holds both right after a collapse and after DeleteRemoved.
func (m *SurfaceMemory) Validate() {
	for _, e := range m.front.items[m.front.head:] {
		if e.used {
			continue
		}
		assert.That(!e.a.removed, "front edge has a removed endpoint")
		assert.That(!e.b.removed, "front edge has a removed endpoint")
	}

	twiceEdges := 0
	hashNodeCount := 0
	m.nodeHash.ForEachValue(func(n *Node) {
		assert.That(!n.removed, "removed node present in the spatial hash")
		for _, e := range n.edges {
			assert.That(!e.a.removed, "removed edge endpoint reachable from the spatial hash")
			assert.That(!e.b.removed, "removed edge endpoint reachable from the spatial hash")
		}
		twiceEdges += len(n.edges)
		hashNodeCount++
	})
	liveEdges := 0
	for _, e := range m.edges {
		if !e.a.removed && !e.b.removed {
			liveEdges++
		}
	}
	liveNodes := 0
	for _, n := range m.nodes {
		if !n.removed {
			liveNodes++
		}
	}
	assert.Thatf(2*liveEdges == twiceEdges,
		"expected 2*edges(%d)=%d to equal the sum of node adjacency sizes, got %d",
		liveEdges, 2*liveEdges, twiceEdges)
	assert.Thatf(liveNodes == hashNodeCount,
		"expected live node count %d to equal spatial hash node count %d",
		liveNodes, hashNodeCount)
}

func (m *SurfaceMemory) notifyAddTriangle(a, b, c *Node, data VolumeData) {
	if m.sink != nil {
		m.sink.OnAddTriangle(a, b, c, data)
	}
}

func (m *SurfaceMemory) notifyAddEdge(e *Edge) {
	if m.sink != nil {
		m.sink.OnAddEdge(e)
	}
}

func (m *SurfaceMemory) notifyRemoveNode(n *Node) {
	if m.sink != nil {
		m.sink.OnRemoveNode(n)
	}
}

func (m *SurfaceMemory) notifyFollowSurfaceFail() {
	if m.sink != nil {
		m.sink.IncFollowSurfaceFails()
	}
}
