package spatialhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

type point struct {
	id  int
	pos r3.Vec
}

func posOfPoint(p *point) r3.Vec { return p.pos }

func TestAddWithinRemove(t *testing.T) {
	h := New[*point](1.0, posOfPoint)
	a := &point{1, r3.Vec{X: 0, Y: 0, Z: 0}}
	b := &point{2, r3.Vec{X: 0.5, Y: 0, Z: 0}}
	c := &point{3, r3.Vec{X: 10, Y: 10, Z: 10}}
	h.Add(a)
	h.Add(b)
	h.Add(c)
	require.Equal(t, 3, h.ValueCount())

	found := h.Within(r3.Vec{X: 0, Y: 0, Z: 0}, 1)
	assert.ElementsMatch(t, []*point{a, b}, found)

	h.Remove(b)
	require.Equal(t, 2, h.ValueCount())
	found = h.Within(r3.Vec{X: 0, Y: 0, Z: 0}, 1)
	assert.ElementsMatch(t, []*point{a}, found)
}

func TestNegativeCoordinatesDoNotCollide(t *testing.T) {
	h := New[*point](2.0, posOfPoint)
	positions := []r3.Vec{
		{X: -5, Y: -5, Z: -5},
		{X: 5, Y: 5, Z: 5},
		{X: -5, Y: 5, Z: -5},
		{X: 0, Y: 0, Z: 0},
	}
	pts := make([]*point, len(positions))
	for i, p := range positions {
		pts[i] = &point{i, p}
		h.Add(pts[i])
	}
	require.Equal(t, len(positions), h.ValueCount())
	require.Equal(t, len(positions), h.CellCount())

	for i, p := range positions {
		found := h.Within(p, 0.01)
		require.Len(t, found, 1)
		assert.Equal(t, pts[i], found[0])
	}
}

func TestEmptyCellsAreDropped(t *testing.T) {
	h := New[*point](1.0, posOfPoint)
	a := &point{1, r3.Vec{X: 0, Y: 0, Z: 0}}
	h.Add(a)
	require.Equal(t, 1, h.CellCount())
	h.Remove(a)
	assert.Equal(t, 0, h.CellCount())
	assert.Equal(t, 0, h.ValueCount())
}

func TestForEachCellVisitsInInsertionOrder(t *testing.T) {
	h := New[*point](1.0, posOfPoint)
	// Each point lands in its own cell, spaced 10 apart.
	var pts []*point
	for i := 0; i < 20; i++ {
		p := &point{i, r3.Vec{X: float64(10 * i)}}
		h.Add(p)
		pts = append(pts, p)
	}

	var first, second []int
	record := func(dst *[]int) func([]*point) {
		return func(cell []*point) {
			for _, p := range cell {
				*dst = append(*dst, p.id)
			}
		}
	}
	h.ForEachCell(record(&first))
	h.ForEachCell(record(&second))

	require.Equal(t, first, second)
	for i := range pts {
		assert.Equal(t, i, first[i])
	}
}

func TestForEachCellAfterRemovePreservesRemainingOrder(t *testing.T) {
	h := New[*point](1.0, posOfPoint)
	a := &point{1, r3.Vec{X: 0}}
	b := &point{2, r3.Vec{X: 10}}
	c := &point{3, r3.Vec{X: 20}}
	h.Add(a)
	h.Add(b)
	h.Add(c)
	h.Remove(b)

	var ids []int
	h.ForEachCell(func(cell []*point) {
		for _, p := range cell {
			ids = append(ids, p.id)
		}
	})
	assert.Equal(t, []int{1, 3}, ids)
}

func TestForEachValueVisitsAllOnce(t *testing.T) {
	h := New[*point](1.0, posOfPoint)
	expected := map[*point]bool{}
	for i := 0; i < 50; i++ {
		p := &point{i, r3.Vec{X: float64(i % 5), Y: float64(i % 3), Z: float64(-i % 7)}}
		h.Add(p)
		expected[p] = true
	}
	seen := map[*point]bool{}
	h.ForEachValue(func(p *point) {
		seen[p] = true
	})
	assert.Equal(t, expected, seen)
}
