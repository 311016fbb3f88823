package meshing

import "github.com/math-eaton/website/internal/scene"

// unitBoxTriangles is a unit cube centred on the origin, 12 triangles.
var unitBoxTriangles = []float32{
	// front (+Z)
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,
	// back (-Z)
	0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5,
	// left (-X)
	-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	// right (+X)
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5,
	// top (+Y)
	-0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, 0.5,
	// bottom (-Y)
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
}

// unitBoxEdges is the 12-edge outline of a unit cube as a line list.
var unitBoxEdges = []float32{
	// front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// BoxTriangles returns a width×height×depth box centred on the origin.
func BoxTriangles(width, height, depth float32) *scene.Geometry {
	return scene.NewGeometry(scene.TopologyTriangles, scaled(unitBoxTriangles, width, height, depth))
}

// BoxEdges returns the outline of a width×height×depth box as line segments.
func BoxEdges(width, height, depth float32) *scene.Geometry {
	return scene.NewGeometry(scene.TopologyLines, scaled(unitBoxEdges, width, height, depth))
}

func scaled(unit []float32, sx, sy, sz float32) []float32 {
	out := make([]float32, len(unit))
	for i := 0; i < len(unit); i += scene.VertexStride {
		out[i] = unit[i] * sx
		out[i+1] = unit[i+1] * sy
		out[i+2] = unit[i+2] * sz
	}
	return out
}
