package sink

import "github.com/jonmaiga/advancing-front-triangulation/afront"

// Tee returns a MeshSink that fans every event out to all of sinks, in
// order - e.g. a VertexBuffer to export from, alongside a second one
// scoped to just the current generation pass for progress reporting.
func Tee(sinks ...afront.MeshSink) afront.MeshSink {
	return afront.MultiSink(sinks)
}
