package skyline

import (
	"testing"

	"github.com/math-eaton/website/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

func TestPassFor(t *testing.T) {
	cases := []struct {
		name string
		mat  scene.Material
		want Pass
	}{
		{"face mesh", scene.Material{Opacity: 1, Wireframe: true}, PassOpaque},
		{"solid volume", scene.Material{Opacity: 0.1, Transparent: true}, PassBlended},
		{"hidden wireframe", scene.Material{Opacity: 0, Wireframe: true}, PassSkip},
		{"point cloud", scene.Material{Opacity: 0.666, Transparent: true, PointSize: 4}, PassBlended},
		{"faded but not flagged", scene.Material{Opacity: 0.5}, PassBlended},
	}
	for _, tc := range cases {
		if got := PassFor(tc.mat); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestDrawMode(t *testing.T) {
	if drawMode(scene.TopologyTriangles) != gl.TRIANGLES ||
		drawMode(scene.TopologyLines) != gl.LINES ||
		drawMode(scene.TopologyPoints) != gl.POINTS {
		t.Fatal("topology mapped to the wrong GL mode")
	}
}

func TestSortBackToFront(t *testing.T) {
	at := func(z float32) *scene.Primitive {
		return scene.NewPrimitive(scene.KindSolidVolume, scene.NewGeometry(scene.TopologyTriangles, nil),
			scene.Material{Opacity: 0.1, Transparent: true}, mgl32.Vec3{0, 0, z})
	}
	near, mid, far := at(40), at(0), at(-40)
	prims := []*scene.Primitive{near, far, mid}
	// camera on +Z looking at the origin
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 100}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	sortBackToFront(prims, view)
	if prims[0] != far || prims[1] != mid || prims[2] != near {
		t.Fatalf("got z order %v, %v, %v", prims[0].Position.Z(), prims[1].Position.Z(), prims[2].Position.Z())
	}
}
