package sink

import "github.com/yofu/dxf"

// WriteDXF renders buf's accumulated triangles as a DXF wireframe: each
// triangle becomes three line entities on a single layer. DXF has no
// native triangle primitive, so the wireframe is the natural mapping for
// a CAD-facing export.
func WriteDXF(path string, buf *VertexBuffer) error {
	d := dxf.NewDrawing()
	d.Layer("mesh", false)
	for _, tri := range buf.Triangles {
		a, b, c := tri.Positions[0], tri.Positions[1], tri.Positions[2]
		d.Line(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
		d.Line(b.X, b.Y, b.Z, c.X, c.Y, c.Z)
		d.Line(c.X, c.Y, c.Z, a.X, a.Y, a.Z)
	}
	return d.SaveAs(path)
}
