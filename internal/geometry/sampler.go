package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultDensity is the number of sample points per unit along a face axis.
const DefaultDensity = 1.2

// Face is one of the six planar sides of a box centred on the origin.
type Face int

const (
	FaceFront Face = iota // +Z
	FaceBack              // -Z
	FaceLeft              // -X
	FaceRight             // +X
	FaceTop               // +Y
	FaceBottom            // -Y
)

// AllFaces lists the faces in sampling order.
var AllFaces = [6]Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom}

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// extents returns the lengths of the two swept axes (u, v) for the face.
func (f Face) extents(width, height, depth float32) (u, v float32) {
	switch f {
	case FaceFront, FaceBack:
		return width, height
	case FaceLeft, FaceRight:
		return depth, height
	case FaceTop, FaceBottom:
		return width, depth
	default:
		panic(fmt.Sprintf("geometry: unknown face %d", int(f)))
	}
}

// GridResolution returns the number of grid cells along the face's u and v axes.
func GridResolution(face Face, width, height, depth float32, density float64) (gridU, gridV int) {
	mustBePositive(width, height, depth, density)
	u, v := face.extents(width, height, depth)
	return cells(u, density), cells(v, density)
}

// SampleCount returns the number of points SampleFace emits for the face.
func SampleCount(face Face, width, height, depth float32, density float64) int {
	gu, gv := GridResolution(face, width, height, depth, density)
	return (gu + 1) * (gv + 1)
}

// SampleFace emits a grid of points lying on one face of a width×height×depth
// box centred on the origin. Points are ordered row-major over (i, j) with i
// sweeping the face's u axis. Both grid ends land exactly on the box edges.
func SampleFace(face Face, width, height, depth float32, density float64) []mgl32.Vec3 {
	gridU, gridV := GridResolution(face, width, height, depth, density)
	hw, hh, hd := width/2, height/2, depth/2

	points := make([]mgl32.Vec3, 0, (gridU+1)*(gridV+1))
	for i := 0; i <= gridU; i++ {
		for j := 0; j <= gridV; j++ {
			var p mgl32.Vec3
			switch face {
			case FaceFront:
				p = mgl32.Vec3{lerp(i, gridU, width, hw), lerp(j, gridV, height, hh), hd}
			case FaceBack:
				p = mgl32.Vec3{lerp(i, gridU, width, hw), lerp(j, gridV, height, hh), -hd}
			case FaceLeft:
				p = mgl32.Vec3{-hw, lerp(j, gridV, height, hh), lerp(i, gridU, depth, hd)}
			case FaceRight:
				p = mgl32.Vec3{hw, lerp(j, gridV, height, hh), lerp(i, gridU, depth, hd)}
			case FaceTop:
				p = mgl32.Vec3{lerp(i, gridU, width, hw), hh, lerp(j, gridV, depth, hd)}
			case FaceBottom:
				p = mgl32.Vec3{lerp(i, gridU, width, hw), -hh, lerp(j, gridV, depth, hd)}
			}
			points = append(points, p)
		}
	}
	return points
}

// SampleAllFaces concatenates the samples of all six faces in AllFaces order.
func SampleAllFaces(width, height, depth float32, density float64) []mgl32.Vec3 {
	total := 0
	for _, f := range AllFaces {
		total += SampleCount(f, width, height, depth, density)
	}
	points := make([]mgl32.Vec3, 0, total)
	for _, f := range AllFaces {
		points = append(points, SampleFace(f, width, height, depth, density)...)
	}
	return points
}

// Flatten packs points into an xyz float slice.
func Flatten(points []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// cellEpsilon absorbs float32 rounding so that e.g. 5 units at 1.2/unit
// yields 6 cells rather than 7.
const cellEpsilon = 1e-6

func cells(length float32, density float64) int {
	n := int(math.Ceil(float64(length)*density - cellEpsilon))
	if n < 1 {
		return 1
	}
	return n
}

// lerp maps index k of a grid with n cells onto [-half, half] of an axis with
// the given length. The last index is pinned to +half so the far edge does
// not drift.
func lerp(k, n int, length, half float32) float32 {
	if k == n {
		return half
	}
	return float32(k)*length/float32(n) - half
}

func mustBePositive(width, height, depth float32, density float64) {
	if !(width > 0 && height > 0 && depth > 0 && density > 0) {
		panic(fmt.Sprintf("geometry: non-positive extent %gx%gx%g (density %g)", width, height, depth, density))
	}
}
