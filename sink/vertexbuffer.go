// Package sink collects MeshSink implementations: ways to turn the
// triangle stream an advancing front emits into something outside the
// core cares about - an in-memory buffer, a 3MF/DXF file, or a debug
// image. None of them know anything about nodes or edges beyond the
// positions and normals afront.MeshSink hands them.
package sink

import (
	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a plain snapshot of one emitted triangle: three positions,
// their normals in the same order, and whatever custom payload the
// volume attached.
type Triangle struct {
	Positions [3]r3.Vec
	Normals   [3]r3.Vec
	Custom    interface{}
}

// VertexBuffer is a MeshSink that accumulates every emitted triangle
// into a flat slice, the way a renderer's upload buffer would. It's the
// adaptation of the teacher's channel-fed vertex accumulator into a
// plain synchronous sink, since the engine already calls sinks
// synchronously from its own goroutine.
type VertexBuffer struct {
	afront.BaseSink
	Triangles       []Triangle
	RemovedNodes    int
	FollowSurfaceFails int
}

// NewVertexBuffer creates an empty vertex buffer.
func NewVertexBuffer() *VertexBuffer {
	return &VertexBuffer{}
}

func (v *VertexBuffer) OnAddTriangle(a, b, c *afront.Node, data afront.VolumeData) {
	v.Triangles = append(v.Triangles, Triangle{
		Positions: [3]r3.Vec{a.Pos(), b.Pos(), c.Pos()},
		Normals:   [3]r3.Vec{a.Normal(), b.Normal(), c.Normal()},
		Custom:    data.Custom,
	})
}

func (v *VertexBuffer) OnRemoveNode(n *afront.Node) {
	v.RemovedNodes++
}

func (v *VertexBuffer) IncFollowSurfaceFails() {
	v.FollowSurfaceFails++
}

// Bounds returns the axis-aligned bounding box of every vertex seen so
// far, as (min, max). It returns a zero box if no triangle was emitted.
func (v *VertexBuffer) Bounds() (r3.Vec, r3.Vec) {
	if len(v.Triangles) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	min := v.Triangles[0].Positions[0]
	max := min
	for _, tri := range v.Triangles {
		for _, p := range tri.Positions {
			min = r3.Vec{X: minF(min.X, p.X), Y: minF(min.Y, p.Y), Z: minF(min.Z, p.Z)}
			max = r3.Vec{X: maxF(max.X, p.X), Y: maxF(max.Y, p.Y), Z: maxF(max.Z, p.Z)}
		}
	}
	return min, max
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
