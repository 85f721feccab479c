package sink

import (
	"io"

	"github.com/hpinc/go3mf"
)

// WriteThreeMF encodes buf's accumulated triangles as a single-object
// 3MF model and writes it to w. Vertices aren't deduplicated - every
// triangle contributes three fresh ones - since the buffer only tracks
// positions, not a shared index space, and 3MF has no requirement that
// a mesh's vertices be unique.
func WriteThreeMF(w io.Writer, buf *VertexBuffer) error {
	model := new(go3mf.Model)
	model.Units = go3mf.UnitMillimeter

	mesh := new(go3mf.Mesh)
	for _, tri := range buf.Triangles {
		base := uint32(len(mesh.Vertices.Vertex))
		for _, p := range tri.Positions {
			mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, go3mf.Point3D{
				float32(p.X), float32(p.Y), float32(p.Z),
			})
		}
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
			V1: base, V2: base + 1, V3: base + 2,
		})
	}

	object := &go3mf.Object{ID: 1, Mesh: mesh}
	model.Resources.Objects = append(model.Resources.Objects, object)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	return go3mf.NewEncoder(w).Encode(model)
}
