package graphics

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// NewOffscreenGLContext boots GLFW with a hidden surface, makes an OpenGL 4.1
// core context current on the calling thread, and wraps it. This is device
// acquisition for hosts without their own window system integration: tests,
// headless tools, image generators.
//
// The calling goroutine is locked to its OS thread, because the GL context is
// bound to the thread. On macOS the call must additionally happen on the main
// thread (a GLFW requirement). Destroy on the returned context tears down the
// surface and GLFW.
//
// Parameters:
//   - width, height: size of the default framebuffer in pixels
//
// Returns:
//   - Context: the offscreen context
//   - error: GLFW initialization, surface creation, or GL loading failure
func NewOffscreenGLContext(width, height int) (Context, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(width, height, "offscreen", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create offscreen surface: %w", err)
	}
	win.MakeContextCurrent()

	ctx, err := NewGLContext()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	ctx.(*glContext).window = win
	return ctx, nil
}

// destroyOffscreenSurface releases the hidden surface and GLFW itself. Only
// contexts created by NewOffscreenGLContext own their surface.
func destroyOffscreenSurface(s glSurface) {
	s.Destroy()
	glfw.Terminate()
}
