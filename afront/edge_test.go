package afront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestEdgeOther(t *testing.T) {
	a := newNode(r3.Vec{X: 0}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	e := newEdge(a, b)

	assert.Same(t, b, e.Other(a))
	assert.Same(t, a, e.Other(b))
}

func TestEdgeOtherOfUnrelatedNodePanics(t *testing.T) {
	a := newNode(r3.Vec{X: 0}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	c := newNode(r3.Vec{X: 2}, r3.Vec{Z: 1})
	e := newEdge(a, b)

	assert.Panics(t, func() { e.Other(c) })
}

func TestEdgeCommonNodeAndOtherNode(t *testing.T) {
	a := newNode(r3.Vec{X: 0}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	c := newNode(r3.Vec{X: 2}, r3.Vec{Z: 1})
	ab := newEdge(a, b)
	bc := newEdge(b, c)
	ac := newEdge(a, c)

	assert.True(t, ab.HasCommonNode(bc))
	assert.Same(t, b, ab.CommonNode(bc))
	assert.Same(t, c, ab.OtherNode(bc))

	assert.False(t, ab.HasCommonNode(newEdge(c, newNode(r3.Vec{X: 3}, r3.Vec{Z: 1}))))
	_ = ac
}

func TestEdgeUseReuse(t *testing.T) {
	a := newNode(r3.Vec{X: 0}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	e := newEdge(a, b)

	assert.False(t, e.IsUsed())
	assert.Panics(t, func() { e.reuse() })

	e.use()
	assert.True(t, e.IsUsed())
	e.reuse()
	assert.False(t, e.IsUsed())
}

func TestEdgeHasNode(t *testing.T) {
	a := newNode(r3.Vec{X: 0}, r3.Vec{Z: 1})
	b := newNode(r3.Vec{X: 1}, r3.Vec{Z: 1})
	c := newNode(r3.Vec{X: 2}, r3.Vec{Z: 1})
	e := newEdge(a, b)

	assert.True(t, e.HasNode(a))
	assert.True(t, e.HasNode(b))
	assert.False(t, e.HasNode(c))
}
