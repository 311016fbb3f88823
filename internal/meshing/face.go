package meshing

import (
	"github.com/math-eaton/website/internal/profiling"
	"github.com/math-eaton/website/internal/scene"

	"github.com/fogleman/delaunay"
	"github.com/go-gl/mathgl/mgl32"
)

// TriangulateFace builds a triangle mesh over the points of one planar face.
// The points are projected to 2D by dropping the axis along which they vary
// least, Delaunay-triangulated, and every triangle is emitted with the
// original 3D positions. Inputs with no valid triangulation (fewer than three
// distinct points, or all points collinear) yield an empty geometry.
func TriangulateFace(points []mgl32.Vec3) *scene.Geometry {
	defer profiling.Track("meshing.TriangulateFace")()

	if len(points) < 3 {
		return scene.NewGeometry(scene.TopologyTriangles, nil)
	}

	u, v := projectionAxes(points)
	projected := make([]delaunay.Point, len(points))
	for i, p := range points {
		projected[i] = delaunay.Point{X: float64(p[u]), Y: float64(p[v])}
	}

	if degenerate(projected) {
		return scene.NewGeometry(scene.TopologyTriangles, nil)
	}

	tri, err := delaunay.Triangulate(projected)
	if err != nil || len(tri.Triangles) == 0 {
		return scene.NewGeometry(scene.TopologyTriangles, nil)
	}

	vertices := make([]float32, 0, len(tri.Triangles)*scene.VertexStride)
	for _, idx := range tri.Triangles {
		p := points[idx]
		vertices = append(vertices, p[0], p[1], p[2])
	}
	return scene.NewGeometry(scene.TopologyTriangles, vertices)
}

// projectionAxes returns the two axes with the largest spread; the remaining
// axis is the face normal and is dropped.
func projectionAxes(points []mgl32.Vec3) (u, v int) {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		for a := 0; a < 3; a++ {
			if p[a] < lo[a] {
				lo[a] = p[a]
			}
			if p[a] > hi[a] {
				hi[a] = p[a]
			}
		}
	}
	drop := 0
	for a := 1; a < 3; a++ {
		if hi[a]-lo[a] < hi[drop]-lo[drop] {
			drop = a
		}
	}
	switch drop {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// degenerate reports whether pts span no area: fewer than three distinct
// points, or all of them on one line.
func degenerate(pts []delaunay.Point) bool {
	a := pts[0]
	b, found := a, false
	for _, p := range pts[1:] {
		if p != a {
			b, found = p, true
			break
		}
	}
	if !found {
		return true
	}
	for _, c := range pts {
		if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) != 0 {
			return false
		}
	}
	return true
}
