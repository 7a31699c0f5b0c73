package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/manta/pkg/input"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	title         string
	mouseCaptured bool
	vsync         bool
}

// NewWindow creates a new GLFW window with an OpenGL 4.6 core context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	// The scene is drawn by a single fullscreen triangle; depth testing only gets in the way
	gl.Disable(gl.DEPTH_TEST)

	w := &Window{
		glfwWindow: glfwWindow,
		title:      title,
		vsync:      vsync,
	}

	// The framebuffer can differ from the requested window size on HiDPI displays
	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()
	w.OnResize(fbWidth, fbHeight)

	return w, nil
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events, firing any registered callbacks
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose requests (or cancels a request for) closing the window
func (w *Window) SetShouldClose(value bool) {
	w.glfwWindow.SetShouldClose(value)
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// FramebufferSize returns the framebuffer dimensions last applied to the viewport
func (w *Window) FramebufferSize() (width, height int) {
	return w.width, w.height
}

// Title returns the window title
func (w *Window) Title() string {
	return w.title
}

// VSync reports whether buffer swaps wait for the vertical blank
func (w *Window) VSync() bool {
	return w.vsync
}

// KeyDown reports whether key is currently pressed
func (w *Window) KeyDown(key input.Key) bool {
	return w.glfwWindow.GetKey(glfw.Key(key)) == glfw.Press
}

// OnResize applies a new framebuffer size to the GL viewport
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ForwardEvents routes scroll, cursor and framebuffer resize callbacks into
// queue. They fire synchronously inside PollEvents.
func (w *Window) ForwardEvents(queue *input.Queue) {
	w.glfwWindow.SetScrollCallback(func(_ *glfw.Window, xoffset, yoffset float64) {
		queue.PushScroll(xoffset, yoffset)
	})
	w.glfwWindow.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		queue.PushCursor(xpos, ypos)
	})
	w.glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		queue.PushResize(width, height)
	})
}

// SetMouseCaptured captures (hides and locks) or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}
