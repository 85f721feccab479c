// Package spatialhash implements a generic 3D cell hash: a uniform grid
// keyed by floor(position/cellSize), used by the afront package as its
// node-neighborhood index. It knows nothing about nodes, edges or
// triangulation - it stores whatever comparable value the caller gives it
// at whatever position the caller's accessor reports.
package spatialhash

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// mixConstant is the multiplier of the mx3 finalizer: a fast, well
// distributed 64 bit mix used to turn three cell coordinates into one
// bucket key without clustering on negative coordinates.
const mixConstant uint64 = 0xbea225f9eb34556d

func mix(x uint64) uint64 {
	x ^= x >> 32
	x *= mixConstant
	x ^= x >> 29
	x *= mixConstant
	x ^= x >> 32
	x *= mixConstant
	x ^= x >> 29
	return x
}

func hashCell(cx, cy, cz int64) uint64 {
	x := uint64(cx) + 0xbea225f9eb34556d
	y := uint64(cy) - 0xbea225f9eb34556d
	z := uint64(cz) + 0xe9846af9b1a615d
	return mix(x ^ mix(y^mix(z)))
}

func floorTo(v float64) int64 {
	return int64(math.Floor(v))
}

// Hash is a cell hash over values of type T. T is typically a small
// handle (a pointer or an index); PosOf tells the hash where a value
// currently lives so it can be bucketed and queried.
type Hash[T comparable] struct {
	cellSize    float64
	invCellSize float64
	posOf       func(T) r3.Vec
	cells       map[uint64][]T
	cellOrder   []uint64
	valueCount  int
}

// New creates a hash with the given cell size. posOf must return the
// same position that was passed to Add until the matching Remove.
func New[T comparable](cellSize float64, posOf func(T) r3.Vec) *Hash[T] {
	return &Hash[T]{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		posOf:       posOf,
		cells:       make(map[uint64][]T),
	}
}

// CellSize returns the configured cell size.
func (h *Hash[T]) CellSize() float64 {
	return h.cellSize
}

// CellCount returns the number of non-empty cells.
func (h *Hash[T]) CellCount() int {
	return len(h.cells)
}

// ValueCount returns the number of indexed values.
func (h *Hash[T]) ValueCount() int {
	return h.valueCount
}

func (h *Hash[T]) cellOf(pos r3.Vec) uint64 {
	cx := floorTo(pos.X * h.invCellSize)
	cy := floorTo(pos.Y * h.invCellSize)
	cz := floorTo(pos.Z * h.invCellSize)
	return hashCell(cx, cy, cz)
}

// Add indexes v at its current position.
func (h *Hash[T]) Add(v T) {
	key := h.cellOf(h.posOf(v))
	if _, ok := h.cells[key]; !ok {
		h.cellOrder = append(h.cellOrder, key)
	}
	h.cells[key] = append(h.cells[key], v)
	h.valueCount++
}

// Remove drops v from the cell its current position maps to, preserving
// the insertion order of whatever is left in the cell. Empty cells are
// dropped eagerly so CellCount reflects live occupancy.
func (h *Hash[T]) Remove(v T) {
	key := h.cellOf(h.posOf(v))
	values := h.cells[key]
	for i, e := range values {
		if e == v {
			copy(values[i:], values[i+1:])
			values = values[:len(values)-1]
			break
		}
	}
	if len(values) == 0 {
		delete(h.cells, key)
		h.removeCellOrder(key)
	} else {
		h.cells[key] = values
	}
	h.valueCount--
}

// removeCellOrder drops key from the insertion-ordered cell list, once
// Remove has emptied it.
func (h *Hash[T]) removeCellOrder(key uint64) {
	for i, k := range h.cellOrder {
		if k == key {
			copy(h.cellOrder[i:], h.cellOrder[i+1:])
			h.cellOrder = h.cellOrder[:len(h.cellOrder)-1]
			return
		}
	}
}

// CellValues returns the values stored in the cell containing pos.
func (h *Hash[T]) CellValues(pos r3.Vec) []T {
	return h.cells[h.cellOf(pos)]
}

// Within returns every value within r of pos, examining only the
// touched cells.
func (h *Hash[T]) Within(pos r3.Vec, r float64) []T {
	var found []T
	h.ForEachWithin(pos, r, func(v T) bool {
		found = append(found, v)
		return true
	})
	return found
}

// HasWithin reports whether any value lies within r of pos, without
// materializing the full result set.
func (h *Hash[T]) HasWithin(pos r3.Vec, r float64) bool {
	has := false
	h.ForEachWithin(pos, r, func(T) bool {
		has = true
		return false
	})
	return has
}

// ForEachWithin visits every value within r of pos, touched cells in
// the order their bounding box sweep reaches them, and in insertion
// order within a cell. The callback returning false stops the scan
// early.
func (h *Hash[T]) ForEachWithin(pos r3.Vec, r float64, callback func(T) bool) {
	cx1 := floorTo((pos.X - r) * h.invCellSize)
	cy1 := floorTo((pos.Y - r) * h.invCellSize)
	cz1 := floorTo((pos.Z - r) * h.invCellSize)
	cx2 := floorTo((pos.X + r) * h.invCellSize)
	cy2 := floorTo((pos.Y + r) * h.invCellSize)
	cz2 := floorTo((pos.Z + r) * h.invCellSize)

	r2 := r * r
	for cz := cz1; cz <= cz2; cz++ {
		for cy := cy1; cy <= cy2; cy++ {
			for cx := cx1; cx <= cx2; cx++ {
				for _, v := range h.cells[hashCell(cx, cy, cz)] {
					d := r3.Sub(pos, h.posOf(v))
					if r3.Dot(d, d) <= r2 {
						if !callback(v) {
							return
						}
					}
				}
			}
		}
	}
}

// ForEachValue visits every indexed value exactly once.
func (h *Hash[T]) ForEachValue(callback func(T)) {
	h.ForEachCell(func(cell []T) {
		for _, v := range cell {
			callback(v)
		}
	})
}

// ForEachCell visits the value slice of every non-empty cell, in the
// order each cell was first populated. Go's map iteration order is
// randomized per process, so this walks cellOrder rather than ranging
// h.cells directly - callers (SurfaceMemory.CollapseNodesOutside,
// CollapseNodeCellsOutside) mutate state as they go, and need that walk
// to be reproducible run to run.
func (h *Hash[T]) ForEachCell(callback func([]T)) {
	for _, key := range h.cellOrder {
		callback(h.cells[key])
	}
}
