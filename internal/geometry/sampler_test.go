package geometry

import (
	"math"
	"testing"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func TestGridResolution(t *testing.T) {
	cases := []struct {
		face         Face
		wantU, wantV int
	}{
		{FaceFront, 6, 12}, // width 5, height 10
		{FaceBack, 6, 12},
		{FaceLeft, 3, 12}, // depth 2.5
		{FaceRight, 3, 12},
		{FaceTop, 6, 3},
		{FaceBottom, 6, 3},
	}
	for _, tc := range cases {
		gu, gv := GridResolution(tc.face, 5, 10, 2.5, DefaultDensity)
		if gu != tc.wantU || gv != tc.wantV {
			t.Errorf("%s: got %dx%d, want %dx%d", tc.face, gu, gv, tc.wantU, tc.wantV)
		}
	}
}

func TestSampleFaceCountAndPlane(t *testing.T) {
	dims := [][3]float32{
		{5, 20, 5},
		{25, 70, 20},
		{7.3, 33.1, 12.9},
		{0.4, 0.4, 0.4},
	}
	for _, d := range dims {
		w, h, dp := d[0], d[1], d[2]
		for _, face := range AllFaces {
			gu, gv := GridResolution(face, w, h, dp, DefaultDensity)
			pts := SampleFace(face, w, h, dp, DefaultDensity)
			if want := (gu + 1) * (gv + 1); len(pts) != want {
				t.Fatalf("%v %s: got %d points, want %d", d, face, len(pts), want)
			}
			for _, p := range pts {
				var got, want float32
				switch face {
				case FaceFront:
					got, want = p.Z(), dp/2
				case FaceBack:
					got, want = p.Z(), -dp/2
				case FaceLeft:
					got, want = p.X(), -w/2
				case FaceRight:
					got, want = p.X(), w/2
				case FaceTop:
					got, want = p.Y(), h/2
				case FaceBottom:
					got, want = p.Y(), -h/2
				}
				if !near(got, want) {
					t.Fatalf("%v %s: point %v off plane, got %v want %v", d, face, p, got, want)
				}
				if math.Abs(float64(p.X())) > float64(w/2)+eps ||
					math.Abs(float64(p.Y())) > float64(h/2)+eps ||
					math.Abs(float64(p.Z())) > float64(dp/2)+eps {
					t.Fatalf("%v %s: point %v outside box", d, face, p)
				}
			}
		}
	}
}

func TestSampleFaceCornersOnEdges(t *testing.T) {
	w, h, d := float32(13.7), float32(41.3), float32(9.1)
	pts := SampleFace(FaceFront, w, h, d, DefaultDensity)
	first, last := pts[0], pts[len(pts)-1]
	if first.X() != -w/2 || first.Y() != -h/2 {
		t.Errorf("first corner: got %v, want (%v, %v)", first, -w/2, -h/2)
	}
	if last.X() != w/2 || last.Y() != h/2 {
		t.Errorf("last corner: got %v, want (%v, %v)", last, w/2, h/2)
	}
}

func TestSampleFaceRowMajor(t *testing.T) {
	w, h, d := float32(5), float32(10), float32(5)
	_, gv := GridResolution(FaceFront, w, h, d, DefaultDensity)
	pts := SampleFace(FaceFront, w, h, d, DefaultDensity)
	// the inner index sweeps y; x only advances every gv+1 points
	for k := 1; k <= gv; k++ {
		if pts[k].X() != pts[0].X() {
			t.Fatalf("point %d: x changed inside a row (%v vs %v)", k, pts[k].X(), pts[0].X())
		}
		if !(pts[k].Y() > pts[k-1].Y()) {
			t.Fatalf("point %d: y not increasing", k)
		}
	}
	if !(pts[gv+1].X() > pts[0].X()) {
		t.Fatal("second row did not advance x")
	}

	again := SampleFace(FaceFront, w, h, d, DefaultDensity)
	for i := range pts {
		if pts[i] != again[i] {
			t.Fatalf("ordering not stable at %d", i)
		}
	}
}

func TestSampleAllFaces(t *testing.T) {
	w, h, d := float32(8), float32(30), float32(6)
	want := 0
	for _, f := range AllFaces {
		want += SampleCount(f, w, h, d, DefaultDensity)
	}
	if got := len(SampleAllFaces(w, h, d, DefaultDensity)); got != want {
		t.Fatalf("got %d points, want %d", got, want)
	}
	if got := len(Flatten(SampleAllFaces(w, h, d, DefaultDensity))); got != want*3 {
		t.Fatalf("flatten: got %d floats, want %d", got, want*3)
	}
}

func TestSampleAllFacesOrder(t *testing.T) {
	w, h, d := float32(8), float32(30), float32(6)
	all := SampleAllFaces(w, h, d, DefaultDensity)
	off := 0
	for _, f := range AllFaces {
		for i, p := range SampleFace(f, w, h, d, DefaultDensity) {
			if all[off+i] != p {
				t.Fatalf("%s point %d: got %v, want %v", f, i, all[off+i], p)
			}
		}
		off += SampleCount(f, w, h, d, DefaultDensity)
	}
}

func TestGridResolutionAtWholeProducts(t *testing.T) {
	// 5 at 1.2/unit is 6 cells, not 7
	if gu, gv := GridResolution(FaceFront, 5, 10, 1, 1.2); gu != 6 || gv != 12 {
		t.Fatalf("5x10 at 1.2: got %dx%d cells, want 6x12", gu, gv)
	}
	// float32(35/6) is a hair above 35/6, putting the product 1.9e-7 past 7
	if gu, _ := GridResolution(FaceFront, float32(35.0/6), 10, 1, 1.2); gu != 7 {
		t.Fatalf("35/6 at 1.2: got %d cells, want 7", gu)
	}
	if gu, _ := GridResolution(FaceFront, 5.1, 10, 1, 1.2); gu != 7 {
		t.Fatalf("5.1 at 1.2: got %d cells, want 7", gu)
	}
}

func TestSampleFacePanicsOnNonPositive(t *testing.T) {
	for _, d := range [][3]float32{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: expected panic", d)
				}
			}()
			SampleFace(FaceFront, d[0], d[1], d[2], DefaultDensity)
		}()
	}
}

func BenchmarkSampleAllFaces(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SampleAllFaces(25, 70, 20, DefaultDensity)
	}
}
