package skyline

import (
	_ "embed"
	"fmt"

	"github.com/math-eaton/website/internal/graphics"
	renderer "github.com/math-eaton/website/internal/graphics/renderer"
	"github.com/math-eaton/website/internal/profiling"
	"github.com/math-eaton/website/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	//go:embed shaders/skyline.vert
	vertexShader string
	//go:embed shaders/skyline.frag
	fragmentShader string
)

// gpuMesh is the vertex buffer backing one primitive.
type gpuMesh struct {
	vao, vbo uint32
	count    int32
	mode     uint32
}

// Skyline is a scene.Scene that keeps one VAO/VBO per attached primitive
// and draws them every frame. Add and Remove must run on the GL thread.
type Skyline struct {
	shader *graphics.Shader
	graph  *scene.Graph
	meshes map[*scene.Primitive]*gpuMesh

	opaque  []*scene.Primitive
	blended []*scene.Primitive
}

// New creates an empty skyline renderable.
func New() *Skyline {
	return &Skyline{
		graph:  scene.NewGraph(),
		meshes: make(map[*scene.Primitive]*gpuMesh),
	}
}

// Init compiles the skyline shader.
func (s *Skyline) Init() error {
	var err error
	s.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return fmt.Errorf("skyline shader: %w", err)
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return nil
}

// Add uploads the primitive's geometry and starts drawing it.
func (s *Skyline) Add(p *scene.Primitive) error {
	if err := s.graph.Add(p); err != nil {
		return err
	}
	geom := p.Geometry()
	m := &gpuMesh{count: int32(geom.VertexCount()), mode: drawMode(geom.Topology())}
	if !geom.Empty() {
		verts := geom.Vertices()
		gl.GenVertexArrays(1, &m.vao)
		gl.BindVertexArray(m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, scene.VertexStride, gl.FLOAT, false, scene.VertexStride*4, gl.PtrOffset(0))
		gl.BindVertexArray(0)
	}
	s.meshes[p] = m
	return nil
}

// Remove stops drawing p and frees its buffers.
func (s *Skyline) Remove(p *scene.Primitive) {
	if !s.graph.Contains(p) {
		return
	}
	s.graph.Remove(p)
	if m := s.meshes[p]; m != nil {
		deleteMesh(m)
	}
	delete(s.meshes, p)
}

// Len returns the number of attached primitives.
func (s *Skyline) Len() int {
	return s.graph.Len()
}

// Render draws opaque primitives, then transparent ones back to front.
func (s *Skyline) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderSkyline")()

	s.opaque, s.blended = s.opaque[:0], s.blended[:0]
	s.graph.Each(func(p *scene.Primitive) {
		switch PassFor(p.Material) {
		case PassOpaque:
			s.opaque = append(s.opaque, p)
		case PassBlended:
			s.blended = append(s.blended, p)
		}
	})

	s.shader.Use()
	s.shader.SetMatrix4("proj", &ctx.Proj[0])
	s.shader.SetMatrix4("view", &ctx.View[0])

	for _, p := range s.opaque {
		s.draw(p)
	}

	if len(s.blended) > 0 {
		sortBackToFront(s.blended, ctx.View)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
		for _, p := range s.blended {
			s.draw(p)
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)
}

func (s *Skyline) draw(p *scene.Primitive) {
	m := s.meshes[p]
	if m == nil || m.count == 0 {
		return
	}
	model := p.ModelMatrix()
	mat := p.Material
	s.shader.SetMatrix4("model", &model[0])
	s.shader.SetVector3("color", mat.Color.X(), mat.Color.Y(), mat.Color.Z())
	s.shader.SetFloat("opacity", mat.Opacity)
	s.shader.SetFloat("pointSize", max(mat.PointSize, 1))

	if mat.Wireframe && m.mode == gl.TRIANGLES {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
}

// SetViewport is a no-op; the camera carries the viewport.
func (s *Skyline) SetViewport(width, height int) {}

// Dispose frees every buffer still held and the shader.
func (s *Skyline) Dispose() {
	s.graph.Each(func(p *scene.Primitive) {
		if m := s.meshes[p]; m != nil {
			deleteMesh(m)
		}
	})
	s.graph = scene.NewGraph()
	clear(s.meshes)
	if s.shader != nil {
		s.shader.Delete()
	}
}

func deleteMesh(m *gpuMesh) {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}
