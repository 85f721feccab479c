package sink

import (
	"testing"

	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func newTestNode(pos r3.Vec) *afront.Node {
	m := afront.NewSurfaceMemory(1, nil)
	return m.AddNode(pos, r3.Vec{Z: 1})
}

func TestVertexBufferAccumulatesTriangles(t *testing.T) {
	v := NewVertexBuffer()
	a := newTestNode(r3.Vec{X: 0})
	b := newTestNode(r3.Vec{X: 1})
	c := newTestNode(r3.Vec{Y: 1})

	v.OnAddTriangle(a, b, c, afront.VolumeData{EdgeLen: 0.5, Custom: "mat-1"})

	require.Len(t, v.Triangles, 1)
	tri := v.Triangles[0]
	assert.Equal(t, [3]r3.Vec{a.Pos(), b.Pos(), c.Pos()}, tri.Positions)
	assert.Equal(t, [3]r3.Vec{a.Normal(), b.Normal(), c.Normal()}, tri.Normals)
	assert.Equal(t, "mat-1", tri.Custom)
}

func TestVertexBufferCountersAndBaseSinkFallthrough(t *testing.T) {
	v := NewVertexBuffer()
	v.OnRemoveNode(newTestNode(r3.Vec{}))
	v.OnRemoveNode(newTestNode(r3.Vec{}))
	v.IncFollowSurfaceFails()

	assert.Equal(t, 2, v.RemovedNodes)
	assert.Equal(t, 1, v.FollowSurfaceFails)

	// OnAddEdge is inherited from afront.BaseSink and must not panic.
	a := newTestNode(r3.Vec{})
	b := newTestNode(r3.Vec{X: 1})
	v.OnAddEdge(afront.NewSurfaceMemory(1, nil).AddEdge(a, b))
}

func TestVertexBufferBoundsEmpty(t *testing.T) {
	v := NewVertexBuffer()
	min, max := v.Bounds()
	assert.Equal(t, r3.Vec{}, min)
	assert.Equal(t, r3.Vec{}, max)
}

func TestVertexBufferBoundsSpansAllVertices(t *testing.T) {
	v := NewVertexBuffer()
	a := newTestNode(r3.Vec{X: -1, Y: 0, Z: 0})
	b := newTestNode(r3.Vec{X: 2, Y: 3, Z: 0})
	c := newTestNode(r3.Vec{X: 0, Y: -5, Z: 4})

	v.OnAddTriangle(a, b, c, afront.VolumeData{})

	min, max := v.Bounds()
	assert.Equal(t, r3.Vec{X: -1, Y: -5, Z: 0}, min)
	assert.Equal(t, r3.Vec{X: 2, Y: 3, Z: 4}, max)
}
