package skyline

import (
	"sort"

	"github.com/math-eaton/website/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Pass is the draw pass a primitive belongs to.
type Pass int

const (
	PassSkip Pass = iota
	PassOpaque
	PassBlended
)

// PassFor classifies a material. Invisible materials are never drawn;
// transparent ones are drawn after everything else with blending and
// without depth writes.
func PassFor(m scene.Material) Pass {
	switch {
	case !m.Visible():
		return PassSkip
	case m.Transparent || m.Opacity < 1:
		return PassBlended
	default:
		return PassOpaque
	}
}

// drawMode maps a topology onto the GL primitive mode.
func drawMode(t scene.Topology) uint32 {
	switch t {
	case scene.TopologyLines:
		return gl.LINES
	case scene.TopologyPoints:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

// sortBackToFront orders primitives by view-space depth, farthest first.
func sortBackToFront(prims []*scene.Primitive, view mgl32.Mat4) {
	depth := func(p *scene.Primitive) float32 {
		return view.Mul4x1(p.Position.Vec4(1)).Z()
	}
	sort.SliceStable(prims, func(i, j int) bool {
		return depth(prims[i]) < depth(prims[j])
	})
}
