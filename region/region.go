// Package region tracks the bounding boxes of the patches a host has
// grown with one or more afront.AdvancingFront instances, so it can
// answer "is this generation center already covered?" and "which patches
// overlap this area?" without the host hand-rolling its own box index.
// It sits above the core engine entirely - the engine itself only ever
// sees one generation center at a time.
package region

import (
	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r3"
)

const dimensions = 3

// Patch is one tracked region: an opaque host-defined id plus the
// bounding box the host claims it covers.
type Patch struct {
	ID  interface{}
	Min r3.Vec
	Max r3.Vec
}

func (p *Patch) Bounds() rtreego.Rect {
	lengths := []float64{
		p.Max.X - p.Min.X,
		p.Max.Y - p.Min.Y,
		p.Max.Z - p.Min.Z,
	}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = 1e-9
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{p.Min.X, p.Min.Y, p.Min.Z}, lengths)
	if err != nil {
		panic("region: degenerate patch bounds: " + err.Error())
	}
	return rect
}

// Tracker indexes a set of patches by bounding box.
type Tracker struct {
	tree    *rtreego.Rtree
	patches map[interface{}]*Patch
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		tree:    rtreego.NewTree(dimensions, 5, 20),
		patches: make(map[interface{}]*Patch),
	}
}

// Add indexes a patch around center with the given radius, keyed by id.
// A later Add with the same id first removes the old entry.
func (t *Tracker) Add(id interface{}, center r3.Vec, radius float64) {
	t.Remove(id)
	p := &Patch{
		ID:  id,
		Min: r3.Vec{X: center.X - radius, Y: center.Y - radius, Z: center.Z - radius},
		Max: r3.Vec{X: center.X + radius, Y: center.Y + radius, Z: center.Z + radius},
	}
	t.patches[id] = p
	t.tree.Insert(p)
}

// Remove drops a previously tracked patch, if present.
func (t *Tracker) Remove(id interface{}) {
	if p, ok := t.patches[id]; ok {
		t.tree.Delete(p)
		delete(t.patches, id)
	}
}

// Covered reports whether center already lies inside a tracked patch's
// box.
func (t *Tracker) Covered(center r3.Vec) bool {
	return len(t.Overlapping(center, 0)) > 0
}

// Overlapping returns every tracked patch whose box intersects the box
// of radius r centered on center.
func (t *Tracker) Overlapping(center r3.Vec, r float64) []*Patch {
	rect, err := rtreego.NewRect(
		rtreego.Point{center.X - r, center.Y - r, center.Z - r},
		[]float64{maxEps(2 * r), maxEps(2 * r), maxEps(2 * r)},
	)
	if err != nil {
		panic("region: degenerate query bounds: " + err.Error())
	}
	results := t.tree.SearchIntersect(rect)
	patches := make([]*Patch, len(results))
	for i, s := range results {
		patches[i] = s.(*Patch)
	}
	return patches
}

// Len returns the number of tracked patches.
func (t *Tracker) Len() int {
	return len(t.patches)
}

func maxEps(v float64) float64 {
	if v <= 0 {
		return 1e-9
	}
	return v
}
