package city

import (
	"fmt"

	"github.com/math-eaton/website/internal/geometry"
	"github.com/math-eaton/website/internal/meshing"
	"github.com/math-eaton/website/internal/profiling"
	"github.com/math-eaton/website/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// PrimitivesPerBuilding is six face meshes, the solid and wireframe
// volumes and the point cloud.
const PrimitivesPerBuilding = len(geometry.AllFaces) + 3

var (
	white = mgl32.Vec3{1, 1, 1}
	black = mgl32.Vec3{0, 0, 0}

	faceMaterial  = scene.Material{Color: white, Opacity: 1, Wireframe: true}
	solidMaterial = scene.Material{Color: black, Opacity: 0.1, Transparent: true}
	// The wireframe volume is kept in the scene but never drawn.
	edgeMaterial  = scene.Material{Color: white, Opacity: 0, Wireframe: true}
	pointMaterial = scene.Material{Color: black, Opacity: 0.666, Transparent: true, PointSize: 4}
)

// Factory builds buildings and registers their primitives with a scene.
type Factory struct {
	scene   scene.Scene
	density float64
	pool    *meshing.WorkerPool
}

// NewFactory returns a factory sampling faces at density points per unit.
func NewFactory(s scene.Scene, density float64) *Factory {
	return &Factory{scene: s, density: density}
}

// UsePool triangulates faces on p. A nil pool meshes on the calling goroutine.
func (f *Factory) UsePool(p *meshing.WorkerPool) {
	f.pool = p
}

// Create builds a width×height×depth building standing on the ground at
// (x, z) and adds its primitives to the scene. If the scene rejects any
// primitive, the ones already added are removed again and the error is
// returned. Non-positive dimensions panic.
func (f *Factory) Create(x, width, height, depth, z float32) (*Building, error) {
	defer profiling.Track("city.Factory.Create")()

	origin := mgl32.Vec3{x, height / 2, z}
	b := &Building{
		X: x, Z: z,
		Width: width, Height: height, Depth: depth,
		primitives: make([]*scene.Primitive, 0, PrimitivesPerBuilding),
	}

	// the point cloud is every face's samples; each face meshes its own run
	cloud := geometry.SampleAllFaces(width, height, depth, f.density)
	faces := make([][]mgl32.Vec3, len(geometry.AllFaces))
	off := 0
	for i, face := range geometry.AllFaces {
		n := geometry.SampleCount(face, width, height, depth, f.density)
		faces[i] = cloud[off : off+n : off+n]
		off += n
	}
	for i, mesh := range f.pool.TriangulateAll(faces) {
		if err := f.attach(b, scene.NewPrimitive(scene.KindFaceMesh, mesh, faceMaterial, origin)); err != nil {
			return nil, fmt.Errorf("add %s face: %w", geometry.AllFaces[i], err)
		}
	}

	parts := []struct {
		kind scene.Kind
		geom *scene.Geometry
		mat  scene.Material
	}{
		{scene.KindSolidVolume, meshing.BoxTriangles(width, height, depth), solidMaterial},
		{scene.KindWireframeVolume, meshing.BoxEdges(width, height, depth), edgeMaterial},
		{scene.KindPointCloud, scene.NewGeometry(scene.TopologyPoints, geometry.Flatten(cloud)), pointMaterial},
	}
	for _, part := range parts {
		if err := f.attach(b, scene.NewPrimitive(part.kind, part.geom, part.mat, origin)); err != nil {
			return nil, fmt.Errorf("add %s: %w", part.kind, err)
		}
	}
	return b, nil
}

// attach adds p to the scene and the building, rolling the building back on failure.
func (f *Factory) attach(b *Building, p *scene.Primitive) error {
	if err := f.scene.Add(p); err != nil {
		b.release(f.scene)
		return err
	}
	b.primitives = append(b.primitives, p)
	return nil
}
