package graphics

import "github.com/go-gl/mathgl/mgl32"

// Camera is an orthographic camera looking at Target. The visible area is
// the viewport in pixels divided by Zoom.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Zoom     float32
	Near     float32
	Far      float32

	width, height int
}

// NewCamera returns a camera for a width×height viewport.
func NewCamera(width, height int, zoom float32) *Camera {
	c := &Camera{Zoom: zoom, Near: 1, Far: 1000}
	c.SetViewport(width, height)
	return c
}

// SetViewport records the new viewport size. Zero sizes are clamped to 1.
func (c *Camera) SetViewport(width, height int) {
	c.width, c.height = max(width, 1), max(height, 1)
}

// ProjectionMatrix returns the orthographic projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	hw := float32(c.width) / 2 / c.Zoom
	hh := float32(c.height) / 2 / c.Zoom
	return mgl32.Ortho(-hw, hw, -hh, hh, c.Near, c.Far)
}

// ViewMatrix returns the look-at transform with +Y up.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
}

// Jitter places the camera at base with the x and z components each moved
// by up to ±amount of themselves, then clamps it into [lo, hi].
func (c *Camera) Jitter(rnd interface{ Float64() float64 }, base mgl32.Vec3, amount float32, lo, hi mgl32.Vec3) {
	p := base
	for _, axis := range []int{0, 2} {
		p[axis] += (float32(rnd.Float64())*2 - 1) * p[axis] * amount
	}
	for i := range p {
		p[i] = mgl32.Clamp(p[i], lo[i], hi[i])
	}
	// looking straight down would make +Y a degenerate up vector
	if p[0] == 0 && p[2] == 0 {
		p[2] = 1
	}
	c.Position = p
}
