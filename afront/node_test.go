package afront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNodeHasEdgeTo(t *testing.T) {
	a := newNode(r3.Vec{X: 0}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	c := newNode(r3.Vec{X: 2}, r3.Vec{Z: 1})

	assert.False(t, a.HasEdgeTo(b))
	e := newEdge(a, b)
	a.addEdge(e)
	b.addEdge(e)

	assert.True(t, a.HasEdgeTo(b))
	assert.True(t, b.HasEdgeTo(a))
	assert.False(t, a.HasEdgeTo(c))
	assert.Same(t, e, a.EdgeTo(b))
}

func TestNodeEdgeToSelfPanics(t *testing.T) {
	a := newNode(r3.Vec{}, r3.Vec{Z: 1})
	assert.Panics(t, func() { a.EdgeTo(a) })
}

func TestNodeRemoveEdgeDropsFromAdjacency(t *testing.T) {
	a := newNode(r3.Vec{X: 0}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	e := newEdge(a, b)
	a.addEdge(e)
	require.Len(t, a.Edges(), 1)
	a.removeEdge(e)
	assert.Empty(t, a.Edges())
}

func TestNodeMarkRemoved(t *testing.T) {
	a := newNode(r3.Vec{}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	e := newEdge(a, b)
	a.addEdge(e)
	require.False(t, a.IsRemoved())
	a.markRemoved()
	assert.True(t, a.IsRemoved())
	assert.Empty(t, a.Edges())
}
