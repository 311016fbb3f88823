package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is number of float32 per vertex (pos.xyz)
const VertexStride = 3

var (
	// ErrAttached is returned when a primitive is added to a scene twice.
	ErrAttached = errors.New("scene: primitive already attached")
	// ErrNilGeometry is returned when a primitive carries no geometry.
	ErrNilGeometry = errors.New("scene: primitive has no geometry")
)

// Topology tells the renderer how to assemble a geometry's vertices.
type Topology int

const (
	TopologyTriangles Topology = iota
	TopologyLines
	TopologyPoints
)

func (t Topology) String() string {
	switch t {
	case TopologyTriangles:
		return "triangles"
	case TopologyLines:
		return "lines"
	case TopologyPoints:
		return "points"
	default:
		return "unknown"
	}
}

// Kind identifies the role a primitive plays inside a building.
type Kind int

const (
	KindFaceMesh Kind = iota
	KindSolidVolume
	KindWireframeVolume
	KindPointCloud
)

func (k Kind) String() string {
	switch k {
	case KindFaceMesh:
		return "face-mesh"
	case KindSolidVolume:
		return "solid-volume"
	case KindWireframeVolume:
		return "wireframe-volume"
	case KindPointCloud:
		return "point-cloud"
	default:
		return "unknown"
	}
}

// Geometry is a flat xyz vertex list. It is built once and never mutated;
// only the owning primitive's position moves.
type Geometry struct {
	topology Topology
	vertices []float32
}

// NewGeometry copies vertices into a new immutable geometry.
func NewGeometry(topology Topology, vertices []float32) *Geometry {
	v := make([]float32, len(vertices))
	copy(v, vertices)
	return &Geometry{topology: topology, vertices: v}
}

// Topology returns how the vertices are assembled.
func (g *Geometry) Topology() Topology {
	return g.topology
}

// Vertices returns the backing vertex slice. Callers must not modify it.
func (g *Geometry) Vertices() []float32 {
	return g.vertices
}

// VertexCount returns the number of xyz vertices.
func (g *Geometry) VertexCount() int {
	return len(g.vertices) / VertexStride
}

// Empty reports whether the geometry has nothing to draw.
func (g *Geometry) Empty() bool {
	return len(g.vertices) == 0
}

// Material describes how a primitive is shaded.
type Material struct {
	Color       mgl32.Vec3
	Opacity     float32
	Transparent bool
	Wireframe   bool
	PointSize   float32
}

// Visible reports whether the material produces any pixels.
func (m Material) Visible() bool {
	return m.Opacity > 0
}

// Primitive is one independently renderable object: a mesh or a point cloud.
type Primitive struct {
	Kind     Kind
	Position mgl32.Vec3
	Material Material

	geometry *Geometry
}

// NewPrimitive creates a primitive placed at position.
func NewPrimitive(kind Kind, geometry *Geometry, material Material, position mgl32.Vec3) *Primitive {
	return &Primitive{
		Kind:     kind,
		Position: position,
		Material: material,
		geometry: geometry,
	}
}

// Geometry returns the primitive's immutable geometry.
func (p *Primitive) Geometry() *Geometry {
	return p.geometry
}

// ModelMatrix returns the translation placing the primitive in world space.
func (p *Primitive) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
}
