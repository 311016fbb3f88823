package meshing

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/math-eaton/website/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// triangleArea2D returns the unsigned area of a triangle projected onto axes u, v.
func triangleArea2D(a, b, c mgl32.Vec3, u, v int) float64 {
	ax, ay := float64(a[u]), float64(a[v])
	bx, by := float64(b[u]), float64(b[v])
	cx, cy := float64(c[u]), float64(c[v])
	return math.Abs((bx-ax)*(cy-ay)-(by-ay)*(cx-ax)) / 2
}

func meshArea(verts []float32, u, v int) float64 {
	var total float64
	for i := 0; i+8 < len(verts); i += 9 {
		a := mgl32.Vec3{verts[i], verts[i+1], verts[i+2]}
		b := mgl32.Vec3{verts[i+3], verts[i+4], verts[i+5]}
		c := mgl32.Vec3{verts[i+6], verts[i+7], verts[i+8]}
		total += triangleArea2D(a, b, c, u, v)
	}
	return total
}

// hullArea computes the convex hull area of points projected onto u, v
// using a monotone chain.
func hullArea(points []mgl32.Vec3, u, v int) float64 {
	type pt struct{ x, y float64 }
	pts := make([]pt, len(points))
	for i, p := range points {
		pts[i] = pt{float64(p[u]), float64(p[v])}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x == pts[j].x {
			return pts[i].y < pts[j].y
		}
		return pts[i].x < pts[j].x
	})
	cross := func(o, a, b pt) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}
	hull := make([]pt, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1]

	var a float64
	for i := range hull {
		j := (i + 1) % len(hull)
		a += hull[i].x*hull[j].y - hull[j].x*hull[i].y
	}
	return math.Abs(a) / 2
}

func TestTriangulateFaceTooFewPoints(t *testing.T) {
	inputs := [][]mgl32.Vec3{
		nil,
		{{0, 0, 0}},
		{{0, 0, 0}, {1, 1, 0}},
	}
	for _, in := range inputs {
		geom := TriangulateFace(in)
		if !geom.Empty() {
			t.Fatalf("%d points: got %d vertices, want empty mesh", len(in), geom.VertexCount())
		}
	}
}

func TestTriangulateFaceDegenerate(t *testing.T) {
	collinear := []mgl32.Vec3{{0, 0, 1}, {1, 1, 1}, {2, 2, 1}, {3, 3, 1}}
	if geom := TriangulateFace(collinear); !geom.Empty() {
		t.Fatalf("collinear: got %d vertices, want empty mesh", geom.VertexCount())
	}
	duplicates := []mgl32.Vec3{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}
	if geom := TriangulateFace(duplicates); !geom.Empty() {
		t.Fatalf("duplicates: got %d vertices, want empty mesh", geom.VertexCount())
	}
}

func TestTriangulateFaceCoversHull(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 20; trial++ {
		n := 3 + rng.IntN(60)
		pts := make([]mgl32.Vec3, n)
		for i := range pts {
			// random points on the plane y = 4
			pts[i] = mgl32.Vec3{float32(rng.Float64() * 50), 4, float32(rng.Float64() * 30)}
		}
		geom := TriangulateFace(pts)
		if geom.Empty() {
			t.Fatalf("trial %d: empty mesh for %d random points", trial, n)
		}
		got := meshArea(geom.Vertices(), 0, 2)
		want := hullArea(pts, 0, 2)
		if math.Abs(got-want) > 1e-3*math.Max(1, want) {
			t.Fatalf("trial %d: mesh area %.6f, hull area %.6f", trial, got, want)
		}
		for i := 1; i < len(geom.Vertices()); i += 3 {
			if geom.Vertices()[i] != 4 {
				t.Fatalf("trial %d: vertex left the plane: y=%v", trial, geom.Vertices()[i])
			}
		}
	}
}

func TestTriangulateSampledFaces(t *testing.T) {
	w, h, d := float32(12.5), float32(40), float32(8.25)
	for _, face := range geometry.AllFaces {
		pts := geometry.SampleFace(face, w, h, d, geometry.DefaultDensity)
		geom := TriangulateFace(pts)
		if geom.Empty() {
			t.Fatalf("%s: empty mesh", face)
		}
		if geom.VertexCount()%3 != 0 {
			t.Fatalf("%s: %d vertices is not a triangle list", face, geom.VertexCount())
		}

		u, v := projectionAxes(pts)
		got := meshArea(geom.Vertices(), u, v)
		var want float64
		switch face {
		case geometry.FaceFront, geometry.FaceBack:
			want = float64(w * h)
		case geometry.FaceLeft, geometry.FaceRight:
			want = float64(d * h)
		default:
			want = float64(w * d)
		}
		if math.Abs(got-want) > 1e-2 {
			t.Fatalf("%s: mesh area %.4f, face area %.4f", face, got, want)
		}
	}
}

func TestProjectionAxesDropsNormal(t *testing.T) {
	cases := []struct {
		pts        []mgl32.Vec3
		wantU, wantV int
	}{
		{[]mgl32.Vec3{{0, 0, 2}, {3, 0, 2}, {0, 5, 2}}, 0, 1},
		{[]mgl32.Vec3{{1, 0, 0}, {1, 3, 0}, {1, 0, 5}}, 1, 2},
		{[]mgl32.Vec3{{0, -1, 0}, {3, -1, 0}, {0, -1, 5}}, 0, 2},
	}
	for i, tc := range cases {
		u, v := projectionAxes(tc.pts)
		if u != tc.wantU || v != tc.wantV {
			t.Errorf("case %d: got (%d,%d), want (%d,%d)", i, u, v, tc.wantU, tc.wantV)
		}
	}
}

func TestBoxGeometry(t *testing.T) {
	tris := BoxTriangles(2, 4, 6)
	if tris.VertexCount() != 36 {
		t.Fatalf("box triangles: got %d vertices, want 36", tris.VertexCount())
	}
	edges := BoxEdges(2, 4, 6)
	if edges.VertexCount() != 24 {
		t.Fatalf("box edges: got %d vertices, want 24", edges.VertexCount())
	}
	for i, v := range tris.Vertices() {
		limit := []float32{1, 2, 3}[i%3]
		if v != limit && v != -limit {
			t.Fatalf("box vertex component %d = %v, want ±%v", i, v, limit)
		}
	}
}

func BenchmarkTriangulateFace(b *testing.B) {
	pts := geometry.SampleFace(geometry.FaceFront, 25, 70, 20, geometry.DefaultDensity)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TriangulateFace(pts)
	}
}
