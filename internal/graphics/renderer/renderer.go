package renderer

import (
	"fmt"

	"github.com/math-eaton/website/internal/graphics"
	"github.com/math-eaton/website/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Background is the clear colour behind the skyline.
var Background = mgl32.Vec4{0.5, 0.5, 0.5, 1}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures global GL state and initialises every renderable.
// Renderables that initialised before a failure are disposed again.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	// faces are seen from both sides through the translucent volumes
	gl.Disable(gl.CULL_FACE)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}
	return &Renderer{renderables: rs, camera: camera}, nil
}

// Render clears the frame and draws every renderable.
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(Background[0], Background[1], Background[2], Background[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		View:   r.camera.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// SetFramebufferSize resizes the GL viewport. On high-DPI displays the
// framebuffer is larger than the window.
func (r *Renderer) SetFramebufferSize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// UpdateViewport passes the window size to the camera and every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
