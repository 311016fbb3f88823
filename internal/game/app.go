package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/math-eaton/website/internal/assets"
	"github.com/math-eaton/website/internal/city"
	"github.com/math-eaton/website/internal/config"
	"github.com/math-eaton/website/internal/geometry"
	"github.com/math-eaton/website/internal/graphics"
	"github.com/math-eaton/website/internal/graphics/renderables/skyline"
	renderer "github.com/math-eaton/website/internal/graphics/renderer"
	"github.com/math-eaton/website/internal/input"
	"github.com/math-eaton/website/internal/logging"
	"github.com/math-eaton/website/internal/meshing"
	"github.com/math-eaton/website/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	slowFrame = 16 * time.Millisecond
	fontSize  = 48
)

// The camera starts around (150, height, 200) and is kept inside this box.
// config.Validate holds camera_height to the same y range.
var (
	cameraBase = mgl32.Vec3{150, 0, 200}
	cameraMin  = mgl32.Vec3{-50, 10, -50}
	cameraMax  = mgl32.Vec3{50, 100, 50}
)

// placeCamera jitters camera around the configured base position.
func placeCamera(camera *graphics.Camera, cfg config.Skyline, rnd interface{ Float64() float64 }) {
	base := cameraBase
	base[1] = float32(cfg.CameraHeight)
	camera.Jitter(rnd, base, float32(cfg.CameraJitter), cameraMin, cameraMax)
}

// App drives the skyline from the GLFW main loop.
type App struct {
	window   *glfw.Window
	cfg      config.Skyline
	renderer *renderer.Renderer
	sky      *skyline.Skyline
	city     *city.City
	meshPool *meshing.WorkerPool

	input  *input.Manager
	paused bool

	fontCh <-chan assets.FontResult
	gate   layoutGate

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp builds the renderer and the city for window and starts loading the
// font. The first layout happens on the tick that sees the font arrive.
func NewApp(window *glfw.Window, cfg config.Skyline) (*App, error) {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))

	width, height := window.GetSize()
	camera := graphics.NewCamera(width, height, float32(cfg.CameraZoom))
	placeCamera(camera, cfg, rng)

	sky := skyline.New()
	r, err := renderer.NewRenderer(camera, sky)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	fbW, fbH := window.GetFramebufferSize()
	r.SetFramebufferSize(fbW, fbH)

	pool := meshing.NewWorkerPool(runtime.NumCPU(), 4*len(geometry.AllFaces))
	a := &App{
		window:     window,
		cfg:        cfg,
		renderer:   r,
		sky:        sky,
		city:       city.New(sky, cfg, city.WithRand(rng), city.WithMeshPool(pool)),
		meshPool:   pool,
		input:      input.NewManager(),
		fontCh:     assets.LoadFontAsync(cfg.FontPath, fontSize),
		fpsLimiter: NewFPSLimiter(cfg.FPSLimit),
		lastTime:   time.Now(),
	}
	a.gate.resize(width, height)

	window.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		a.renderer.UpdateViewport(w, h)
		a.gate.resize(w, h)
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		a.renderer.SetFramebufferSize(w, h)
	})
	a.input.Attach(window)

	logging.Logger().Info("camera placed", "position", fmt.Sprintf("%.1f,%.1f,%.1f", camera.Position[0], camera.Position[1], camera.Position[2]))
	return a, nil
}

// Run ticks until the window is closed.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleInput()
	a.pollFont()
	if w, h, ok := a.gate.due(); ok {
		if _, err := a.city.InitLayout(w, h); err != nil {
			logging.Logger().Error("lay out skyline", "err", err)
		}
	}
	if !a.paused {
		a.city.AdvanceFrame(float32(a.cfg.PanSpeed))
	}

	a.renderer.Render(dt)
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(start) - profiling.SumWithPrefix("glfw."); d > slowFrame {
		logging.Logger().Warn("slow frame", "duration", d, "top", profiling.TopN(5))
	}

	a.input.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) handleInput() {
	if a.input.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.input.JustPressed(input.ActionPause) {
		a.paused = !a.paused
		logging.Logger().Debug("pan toggled", "paused", a.paused)
	}
	if a.input.JustPressed(input.ActionRegenerate) {
		a.gate.invalidate()
	}
	if a.input.JustPressed(input.ActionProfile) {
		logging.Logger().Info("frame timings", "buildings", len(a.city.Buildings()),
			"pending", a.city.Pending(), "primitives", a.sky.Len(),
			"mesh_queue", a.meshPool.QueueLength(), "top", profiling.TopN(10))
	}
}

// pollFont picks up the font result without blocking the frame.
func (a *App) pollFont() {
	if a.fontCh == nil {
		return
	}
	select {
	case res := <-a.fontCh:
		a.fontCh = nil
		logFontResult(res, a.cfg.FontPath)
		a.gate.fontLoaded()
	default:
	}
}

// Close removes the skyline and frees GL resources. Must run on the GL thread.
func (a *App) Close() {
	a.city.TeardownLayout()
	a.renderer.Dispose()
	a.meshPool.Shutdown()
}

// logFontResult reports how the font load ended and returns the level used.
func logFontResult(res assets.FontResult, path string) slog.Level {
	switch {
	case res.Fallback:
		logging.Logger().Warn("font load failed, using embedded face", "path", path, "err", res.Err)
		return slog.LevelWarn
	case res.Font == nil:
		logging.Logger().Error("font unavailable", "err", res.Err)
		return slog.LevelError
	default:
		logging.Logger().Info("font ready", "name", res.Font.Name, "glyphs", len(res.Font.Advances))
		return slog.LevelInfo
	}
}
