// Package afront implements advancing-front triangulation of an implicit
// volume's zero-level surface: a node/edge graph backed by a spatial
// hash, a FIFO front of live edges, and the step machine that grows
// triangles outward from a seed until the front empties or a caller-given
// radius is exhausted.
package afront

import (
	"math"

	"github.com/jonmaiga/advancing-front-triangulation/internal/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultErrorMarginScale is the fraction of the current edge length used
// as the surface snap tolerance and the surface-follow step size, absent
// a more specific value from NewWithErrorMargin.
const DefaultErrorMarginScale = 0.1

// minAngle is cos(93 degrees). Two edges closing a triangle must align
// to at least this to be accepted - 3 degrees past perpendicular gives a
// near-coplanar closure a little slack against float noise.
var minAngle = math.Cos(93 * math.Pi / 180)

// testDirs are the six axis directions tried, in order, when picking a
// tangent direction to seed a patch along.
var testDirs = [6]r3.Vec{
	{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 0, Y: 0, Z: -1},
}

// AdvancingFront grows a triangle mesh outward from one or more seeds by
// repeatedly extending, closing or deferring the edges on its front. It
// owns the SurfaceMemory node/edge graph it builds, and talks to a Volume
// and an optional MeshSink to do so.
type AdvancingFront struct {
	volume           Volume
	sink             MeshSink
	defaultEdgeLen   float64
	currentEdgeLen   float64
	creationRadius   float64
	errorMarginScale float64
	useResolution    bool

	memory     *SurfaceMemory
	data       VolumeData
	totalSteps int
}

// New creates an advancing front with the default error margin scale.
// See NewWithErrorMargin for the full parameter list.
func New(volume Volume, sink MeshSink, edgeLen, creationRadius float64) *AdvancingFront {
	return NewWithErrorMargin(volume, sink, edgeLen, creationRadius, DefaultErrorMarginScale)
}

// NewWithErrorMargin creates an advancing front over volume, reporting
// mesh events to sink (which may be nil). edgeLen is the default/target
// spacing between nodes, creationRadius bounds how far from a step's
// generation center a new triangle may be emitted, and errorMarginScale
// scales edgeLen into the surface snap tolerance and follow step size.
func NewWithErrorMargin(volume Volume, sink MeshSink, edgeLen, creationRadius, errorMarginScale float64) *AdvancingFront {
	assert.That(edgeLen > 0, "edge length must be greater than zero")
	assert.That(creationRadius > 0, "creation radius must be greater than zero")
	assert.That(errorMarginScale > 0, "error margin scale must be greater than zero")
	return &AdvancingFront{
		volume:           volume,
		sink:             sink,
		defaultEdgeLen:   edgeLen,
		currentEdgeLen:   edgeLen,
		creationRadius:   creationRadius,
		errorMarginScale: errorMarginScale,
		useResolution:    true,
		memory:           NewSurfaceMemory(15*edgeLen, sink),
		data:             VolumeData{EdgeLen: edgeLen},
	}
}

// IgnoreResolution freezes the edge length at its default for the rest
// of this front's life, ignoring the volume's per-point EdgeLen hint.
// Returns the receiver so it can be chained onto New.
func (f *AdvancingFront) IgnoreResolution() *AdvancingFront {
	f.useResolution = false
	return f
}

// NeedSeed reports whether the front has no work left and no mesh has
// been started yet - TryFindSurface must be called before Step can make
// progress.
func (f *AdvancingFront) NeedSeed() bool {
	return f.memory.FrontEmpty() && f.memory.NodeCount() == 0
}

// EdgeLength returns the default edge length this front was created
// with.
func (f *AdvancingFront) EdgeLength() float64 { return f.defaultEdgeLen }

// CreationRadius returns the creation radius this front was created
// with.
func (f *AdvancingFront) CreationRadius() float64 { return f.creationRadius }

// Volume returns the field this front is triangulating.
func (f *AdvancingFront) Volume() Volume { return f.volume }

// SurfaceMemory returns the node/edge graph the front is building. It's
// exposed mainly for tests and diagnostics - Step and TryFindSurface are
// the normal way to drive it.
func (f *AdvancingFront) SurfaceMemory() *SurfaceMemory { return f.memory }

// TotalSteps returns the number of edges popped and processed across the
// life of the front, including ones deferred for being out of radius.
func (f *AdvancingFront) TotalSteps() int { return f.totalSteps }

// TryFindSurface snaps searchPos onto the volume's surface along the ray
// from the origin through searchPos and, if no live node already sits
// within edge length of it, seeds a new patch there: one node plus a
// second node found by surface-following along a tangent direction made
// by crossing the first node's normal with one of six axis directions. It
// reports false without error on any failure along the way.
func (f *AdvancingFront) TryFindSurface(searchPos r3.Vec) bool {
	dir := unitOrFallback(searchPos, r3.Vec{X: 1})
	tolerance := math.Max(1, f.errorMarginScale*f.defaultEdgeLen)
	start, ok := SnapToSurface(f.volume, searchPos, dir, tolerance)
	if !ok {
		return false
	}
	return f.createStartEdge(start)
}

func (f *AdvancingFront) createStartEdge(startSurfacePos r3.Vec) bool {
	if f.memory.HasNodeWithin(startSurfacePos, f.currentEdgeLen) {
		return false
	}
	normal, ok := f.calcNormal(startSurfacePos)
	if !ok {
		return false
	}
	a := f.memory.AddNode(startSurfacePos, normal)

	dir := perpendicular(a.Normal())
	var bPos r3.Vec
	haveB := false
	for _, testDir := range testDirs {
		bPos, haveB = FollowSurface(f.volume, a.Pos(), dir, f.errorMarginScale*f.currentEdgeLen, f.currentEdgeLen)
		if haveB {
			if _, validOK := f.calcTestPosFollow(a.Pos(), bPos); validOK {
				break
			}
		}
		if math.Abs(1-math.Abs(r3.Dot(testDir, a.Normal()))) < epsilon {
			continue
		}
		dir = unitOrFallback(r3.Cross(a.Normal(), testDir), dir)
	}
	if !haveB {
		// a stays in the mesh as a lone, edgeless node; the HasNodeWithin
		// check above keeps a later seed attempt from piling another one
		// on top of it.
		return false
	}

	bNormal, bNormalOK := f.calcNormal(bPos)
	assert.That(bNormalOK, "could not compute a normal for a seed node the surface walk just found")
	b := f.memory.AddNode(bPos, bNormal)
	f.memory.AddEdge(a, b)
	return true
}

// perpendicular returns a unit vector perpendicular to dir, picked from
// the first axis direction that isn't nearly parallel to it.
func perpendicular(dir r3.Vec) r3.Vec {
	for _, test := range testDirs {
		p := r3.Cross(dir, test)
		if r3.Dot(p, p) < epsilonSqr {
			continue
		}
		return r3.Unit(p)
	}
	assert.Never("no axis direction is perpendicular to the given vector")
	return r3.Vec{}
}

// BuildFullSurface drains the front completely, starting generation
// centered on p. It's a convenience for callers that don't need the
// incremental, radius-limited stepping Step offers.
func (f *AdvancingFront) BuildFullSurface(p r3.Vec) {
	for f.Step(p, math.MaxInt32) {
	}
}

// Step pops up to n edges off the front and processes each: skipping
// ones already used, deferring ones further than the creation radius
// from generatePos back onto the front, and otherwise attempting to
// extend or close a triangle across them. It returns true if it made
// progress on at least one edge within radius; callers loop on Step
// until it returns false to fully drain what's currently reachable.
func (f *AdvancingFront) Step(generatePos r3.Vec, n int) bool {
	step := 0
	progress := 0
	var stopEdge *Edge
	r2 := f.creationRadius * f.creationRadius

	for step < n {
		current := f.memory.PopEdge()
		if current == nil {
			break
		}
		if current == stopEdge {
			current.use()
			f.memory.Requeue(current)
			break
		}
		if current.IsUsed() {
			continue
		}
		assert.That(!current.A().IsRemoved(), "front edge endpoint was removed")
		assert.That(!current.B().IsRemoved(), "front edge endpoint was removed")

		current.use()
		step++
		f.totalSteps++

		d := r3.Sub(generatePos, current.A().Pos())
		if r3.Dot(d, d) >= r2 {
			if stopEdge == nil {
				stopEdge = current
			}
			f.memory.Requeue(current)
			continue
		}

		progress++

		testPos, ok := f.calcTestPosFollow(current.A().Pos(), current.B().Pos())
		if !ok {
			f.memory.notifyFollowSurfaceFail()
			continue
		}

		if common := f.closeWith(current, testPos); common != nil {
			f.closeTriangle(current, common, common.OtherNode(current))
		} else if neighbor := f.findNode(current, testPos); neighbor != nil {
			f.triangulate(current, neighbor)
		}
	}
	return progress > 0
}

func (f *AdvancingFront) calcNormal(pos r3.Vec) (r3.Vec, bool) {
	return GradientNormal(f.volume, pos, f.currentEdgeLen)
}

// calcTestPosFollow resamples the edge's local edge length from the
// volume at the edge's midpoint and follows the surface outward from
// there, perpendicular to the edge, by the (possibly just refreshed)
// current edge length.
func (f *AdvancingFront) calcTestPosFollow(a, b r3.Vec) (r3.Vec, bool) {
	align := r3.Sub(b, a)
	mid := r3.Add(a, r3.Scale(0.5, align))

	f.data = VolumeData{EdgeLen: f.defaultEdgeLen}
	f.volume.Data(mid, &f.data)
	if f.useResolution {
		f.currentEdgeLen = f.data.EdgeLen
	} else {
		f.currentEdgeLen = f.defaultEdgeLen
	}

	return FollowSurface(f.volume, mid, unitOrFallback(align, r3.Vec{X: 1}), f.errorMarginScale*f.currentEdgeLen, f.currentEdgeLen)
}

// closeWith looks for an existing edge incident to current's endpoints
// whose far node sits near testPos and is reasonably aligned with
// current, preferring the most aligned valid candidate. Returning it
// means current should close against that edge's far node rather than
// create one.
func (f *AdvancingFront) closeWith(e *Edge, testPos r3.Vec) *Edge {
	e2 := f.currentEdgeLen * f.currentEdgeLen
	var best *Edge
	bestAlignment := minAngle

	tryEndpoint := func(candidates []*Edge) {
		for _, candidate := range candidates {
			if candidate == e {
				continue
			}
			common := e.CommonNode(candidate)
			if common == nil {
				continue
			}
			neighbor := candidate.Other(common)
			d := r3.Sub(neighbor.Pos(), testPos)
			if r3.Dot(d, d) > e2 {
				continue
			}
			neighborDir := unitOrFallback(r3.Sub(neighbor.Pos(), common.Pos()), r3.Vec{X: 1})
			other := e.Other(common)
			alongEdge := unitOrFallback(r3.Sub(other.Pos(), common.Pos()), r3.Vec{X: 1})
			alignment := r3.Dot(alongEdge, neighborDir)
			if alignment < bestAlignment {
				continue
			}
			if !f.isValidEdge(e, neighbor) {
				continue
			}
			best = candidate
			bestAlignment = alignment
		}
	}
	tryEndpoint(e.A().Edges())
	tryEndpoint(e.B().Edges())
	return best
}

// findNode looks for a live node close to surfacePos that current can
// validly triangulate against, preferring the closest one, falling back
// to creating a brand new node there if none qualifies and none of the
// candidates were rejected only for orientation.
func (f *AdvancingFront) findNode(e *Edge, surfacePos r3.Vec) *Node {
	normal, ok := f.calcNormal(surfacePos)
	if !ok {
		return nil
	}

	var closest *Node
	closestDistSqr := f.currentEdgeLen * f.currentEdgeLen
	foundInvalid := false

	for _, n := range f.memory.Nodes(surfacePos, f.currentEdgeLen) {
		assert.That(!n.IsRemoved(), "a removed node was returned by the spatial hash")
		if e.HasNode(n) {
			continue
		}
		d := r3.Sub(surfacePos, n.Pos())
		distSqr := r3.Dot(d, d)
		if distSqr > closestDistSqr {
			continue
		}
		if r3.Dot(normal, n.Normal()) < 0 {
			continue
		}
		if !f.isValidEdge(e, n) {
			foundInvalid = true
			continue
		}
		closest = n
		closestDistSqr = distSqr
	}

	if closest != nil {
		return closest
	}
	if foundInvalid {
		return nil
	}
	if !f.isValidTriangle(e.A().Pos(), surfacePos, e.B().Pos()) {
		return nil
	}
	return f.memory.AddNode(surfacePos, normal)
}

func (f *AdvancingFront) isValidEdge(e *Edge, neighbor *Node) bool {
	return f.isValidTriangle(e.A().Pos(), neighbor.Pos(), e.B().Pos())
}

// isValidTriangle reports whether the triangle a, b, c's winding-order
// normal agrees with the volume's own gradient normal at its centroid -
// rejecting triangles that would fold the surface back on itself.
func (f *AdvancingFront) isValidTriangle(a, b, c r3.Vec) bool {
	normal := unitOrFallback(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)), r3.Vec{X: 1})
	center := r3.Scale(1.0/3.0, r3.Add(r3.Add(a, b), c))
	expected, ok := f.calcNormal(center)
	if !ok {
		return false
	}
	return r3.Dot(normal, expected) > 0
}

func commonEdgeTo(e *Edge, n *Node) *Edge {
	if en := e.A().EdgeTo(n); en != nil {
		return en
	}
	return e.B().EdgeTo(n)
}

func countEdgesTo(e *Edge, n *Node) int {
	count := 0
	for _, ne := range n.edges {
		if e.HasCommonNode(ne) {
			count++
		}
	}
	return count
}

// triangulate emits a triangle across e to neighbor: a fresh one if
// neighbor shares no edge with either of e's endpoints yet, or a closing
// one reusing the shared edge otherwise.
func (f *AdvancingFront) triangulate(e *Edge, neighbor *Node) {
	if common := commonEdgeTo(e, neighbor); common != nil {
		f.closeTriangle(e, common, neighbor)
	} else {
		f.newTriangle(e, neighbor)
	}
}

func (f *AdvancingFront) newTriangle(e *Edge, neighbor *Node) {
	f.memory.AddEdge(e.A(), neighbor)
	f.memory.AddEdge(neighbor, e.B())
	f.memory.notifyAddTriangle(e.A(), neighbor, e.B(), f.data)
}

// closeTriangle emits a triangle across e and a commonEdge it shares a
// node with, reaching neighbor. Rather than walking the far side of
// commonEdge to re-enqueue what it exposes, it leans on CollapseNode's
// re-enqueue pass (triggered the next time either endpoint collapses) to
// heal any hole this closure leaves on the other side.
func (f *AdvancingFront) closeTriangle(e *Edge, commonEdge *Edge, neighbor *Node) {
	assert.Thatf(countEdgesTo(e, neighbor) <= 2,
		"node at %v has more than 2 edges shared with the closing edge", neighbor.Pos())

	commonEdge.use()
	pivot := commonEdge.CommonNode(e)
	farFromPivot := e.Other(pivot)

	if oldEdge := farFromPivot.EdgeTo(neighbor); oldEdge != nil {
		oldEdge.use()
	} else if farFromPivot == e.B() {
		f.memory.AddEdge(neighbor, farFromPivot)
	} else {
		f.memory.AddEdge(farFromPivot, neighbor)
	}
	f.memory.notifyAddTriangle(e.A(), neighbor, e.B(), f.data)
}
