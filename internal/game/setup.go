package game

import (
	"fmt"

	"github.com/math-eaton/website/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow opens a GL 4.1 core window and loads the GL bindings.
// glfw.Init must already have been called on the main thread.
func SetupWindow(cfg config.Skyline) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	gl.Enable(gl.MULTISAMPLE)

	// vsync only when the limiter is off
	if cfg.FPSLimit > 0 {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}
	return window, nil
}
