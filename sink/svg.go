package sink

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders an XY-plane projection of buf's accumulated triangles
// as a wireframe SVG: a cheap way to eyeball a mesh without a 3D viewer.
// Coordinates are mapped from [-extent, extent] in both axes to the
// width x height canvas; anything outside that range is clipped by the
// SVG viewport rather than by this code.
func WriteSVG(w io.Writer, buf *VertexBuffer, width, height int, extent float64) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	toScreen := func(x, y float64) (int, int) {
		sx := int((x + extent) / (2 * extent) * float64(width))
		sy := int((extent - y) / (2 * extent) * float64(height))
		return sx, sy
	}

	for _, tri := range buf.Triangles {
		var xs, ys []int
		for _, p := range tri.Positions {
			sx, sy := toScreen(p.X, p.Y)
			xs = append(xs, sx)
			ys = append(ys, sy)
		}
		canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:1")
	}

	canvas.End()
}
