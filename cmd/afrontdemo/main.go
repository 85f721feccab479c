// Command afrontdemo triangulates a small built-in implicit volume and
// writes the result as a 3MF, DXF or debug PNG/SVG, depending on the
// output file's extension.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"github.com/jonmaiga/advancing-front-triangulation/sink"
	"github.com/jonmaiga/advancing-front-triangulation/volumes"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	var (
		shape      = flag.String("shape", "sphere", "volume to triangulate: sphere, cube or noisy-sphere")
		radius     = flag.Float64("radius", 5, "radius (or half cube size) of the shape")
		edgeLen    = flag.Float64("edge-len", 0.5, "target edge length")
		creation   = flag.Float64("creation-radius", 1e9, "creation radius around the generation center at the origin")
		out        = flag.String("out", "mesh.3mf", "output file: .3mf, .dxf, .svg or .png")
		extent     = flag.Float64("extent", 8, "half-width of the 2D debug projection, svg/png only")
		imageSize  = flag.Int("image-size", 512, "pixel width/height of the svg/png output")
	)
	flag.Parse()

	volume, err := buildVolume(*shape, *radius)
	if err != nil {
		log.Fatalf("afrontdemo: %v", err)
	}

	buf := sink.NewVertexBuffer()
	front := afront.New(volume, buf, *edgeLen, *creation)
	if !front.TryFindSurface(r3.Vec{X: *radius}) {
		log.Fatalf("afrontdemo: could not find a seed on the surface of %s", *shape)
	}
	front.BuildFullSurface(r3.Vec{})

	log.Printf("afrontdemo: %d triangles, %d follow-surface failures, %d nodes removed",
		len(buf.Triangles), buf.FollowSurfaceFails, buf.RemovedNodes)

	if err := writeOutput(*out, buf, *imageSize, *extent); err != nil {
		log.Fatalf("afrontdemo: %v", err)
	}
}

func buildVolume(shape string, radius float64) (afront.Volume, error) {
	switch shape {
	case "sphere":
		return volumes.Sphere{Radius: radius}, nil
	case "cube":
		return volumes.Cube{Size: r3.Vec{X: 2 * radius, Y: 2 * radius, Z: 2 * radius}}, nil
	case "noisy-sphere":
		return volumes.NewAdd(volumes.Sphere{Radius: radius}, volumes.NewNoise(1, radius/4)), nil
	default:
		return nil, errUnknownShape(shape)
	}
}

type errUnknownShape string

func (e errUnknownShape) Error() string { return "unknown shape: " + string(e) }

func writeOutput(path string, buf *sink.VertexBuffer, imageSize int, extent float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".3mf":
		return sink.WriteThreeMF(f, buf)
	case ".dxf":
		f.Close()
		return sink.WriteDXF(path, buf)
	case ".svg":
		sink.WriteSVG(f, buf, imageSize, imageSize, extent)
		return nil
	case ".png":
		f.Close()
		return sink.WriteRaster(path, buf, imageSize, imageSize, extent)
	default:
		return errUnknownShape("unsupported output extension: " + path)
	}
}
