package afront

// MeshSink receives the mesh as the front advances. All four hooks are
// optional to a caller: embed BaseSink to get no-op defaults and override
// only the ones you care about.
type MeshSink interface {
	// OnAddTriangle is called once per emitted triangle, in the winding
	// order a, b, c. data is the VolumeData sampled at the triangle's
	// generating edge's midpoint, including whatever payload the volume
	// attached.
	OnAddTriangle(a, b, c *Node, data VolumeData)
	// OnAddEdge is called once per front edge created, including the
	// seed edge of a patch.
	OnAddEdge(e *Edge)
	// OnRemoveNode is called once a node is fully disconnected and about
	// to be dropped from the surface memory.
	OnRemoveNode(n *Node)
	// IncFollowSurfaceFails is called once per step where surface
	// following failed to converge, for callers that want to track it as
	// a health metric.
	IncFollowSurfaceFails()
}

// BaseSink is a MeshSink with no-op hooks, meant to be embedded by sinks
// that only care about a subset of the events.
type BaseSink struct{}

func (BaseSink) OnAddTriangle(a, b, c *Node, data VolumeData) {}
func (BaseSink) OnAddEdge(e *Edge)                             {}
func (BaseSink) OnRemoveNode(n *Node)                          {}
func (BaseSink) IncFollowSurfaceFails()                        {}

// MultiSink fans a single notification out to every sink it holds, in
// order.
type MultiSink []MeshSink

func (m MultiSink) OnAddTriangle(a, b, c *Node, data VolumeData) {
	for _, s := range m {
		s.OnAddTriangle(a, b, c, data)
	}
}

func (m MultiSink) OnAddEdge(e *Edge) {
	for _, s := range m {
		s.OnAddEdge(e)
	}
}

func (m MultiSink) OnRemoveNode(n *Node) {
	for _, s := range m {
		s.OnRemoveNode(n)
	}
}

func (m MultiSink) IncFollowSurfaceFails() {
	for _, s := range m {
		s.IncFollowSurfaceFails()
	}
}
