package renderer

import (
	"github.com/math-eaton/website/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state to all renderables
type RenderContext struct {
	Camera *graphics.Camera
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
