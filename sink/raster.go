package sink

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font/gofont/goregular"
)

// WriteRaster rasterizes an XY-plane wireframe projection of buf to a
// PNG at path, the same projection WriteSVG uses, plus a triangle-count
// label in the corner - a quick debug snapshot for a CI artifact or a
// terminal image viewer, where an SVG viewer isn't handy.
func WriteRaster(path string, buf *VertexBuffer, width, height int, extent float64) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(1)

	toScreen := func(x, y float64) (float64, float64) {
		sx := (x + extent) / (2 * extent) * float64(width)
		sy := (extent - y) / (2 * extent) * float64(height)
		return sx, sy
	}

	for _, tri := range buf.Triangles {
		p0 := tri.Positions[0]
		x0, y0 := toScreen(p0.X, p0.Y)
		gc.MoveTo(x0, y0)
		for _, p := range tri.Positions[1:] {
			x, y := toScreen(p.X, p.Y)
			gc.LineTo(x, y)
		}
		gc.Close()
		gc.Stroke()
	}

	if err := drawLabel(img, fmt.Sprintf("%d triangles", len(buf.Triangles))); err != nil {
		return err
	}

	return draw2dimg.SaveToPngFile(path, img)
}

func drawLabel(img *image.RGBA, text string) error {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(14)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(color.Black))
	_, err = ctx.DrawString(text, freetype.Pt(10, 20))
	return err
}
