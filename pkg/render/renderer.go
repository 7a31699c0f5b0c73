// Package render owns the window, the scene shader and the frame loop.
package render

import (
	"fmt"
	"log"

	"github.com/leterax/manta/internal/openglhelper"
	"github.com/leterax/manta/pkg/camera"
	"github.com/leterax/manta/pkg/frame"
	"github.com/leterax/manta/pkg/input"
)

// Config holds the window and shader settings for NewRenderer
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	VertexShaderPath   string
	FragmentShaderPath string

	// Verbose logs cursor-lock changes and resizes
	Verbose bool
}

// Renderer handles the window, the fullscreen triangle and the frame loop
type Renderer struct {
	window   *openglhelper.Window
	triangle *openglhelper.Mesh
	shader   *openglhelper.Shader

	events  *input.Queue
	stepper *frame.Stepper

	verbose bool
}

// NewRenderer creates the window, compiles the scene shader and uploads the
// fullscreen triangle. The controller is driven by the frame loop from then on.
func NewRenderer(cfg Config, controller *camera.Controller) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.LoadShaderFromFiles(cfg.VertexShaderPath, cfg.FragmentShaderPath)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	width, height := window.FramebufferSize()
	viewport := camera.Viewport{Width: width, Height: height}

	r := &Renderer{
		window:   window,
		triangle: openglhelper.NewFullscreenTriangle(shader),
		shader:   shader,
		events:   &input.Queue{},
		stepper:  frame.NewStepper(controller, input.NewSampler(input.DefaultBindings()), viewport),
		verbose:  cfg.Verbose,
	}

	window.ForwardEvents(r.events)
	window.SetMouseCaptured(controller.CursorLocked())

	if r.verbose {
		log.Printf("window %q: framebuffer %dx%d, vsync %t", window.Title(), width, height, window.VSync())
	}

	return r, nil
}

// Run starts the main loop and returns once the window is closed
func (r *Renderer) Run() {
	defer r.Cleanup()

	for !r.window.ShouldClose() {
		res := r.stepper.Step(r.window, r.events)
		r.apply(res)

		r.bindUniforms(res.Uniforms)
		r.triangle.Draw()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}
}

// apply forwards the window-side effects of a step
func (r *Renderer) apply(res frame.Result) {
	if res.Quit {
		r.window.SetShouldClose(true)
	}

	if res.Resized {
		r.window.OnResize(res.Viewport.Width, res.Viewport.Height)
		if r.verbose {
			log.Printf("resized to %dx%d", res.Viewport.Width, res.Viewport.Height)
		}
	}

	if res.CursorLockChanged {
		r.window.SetMouseCaptured(res.CursorLocked)
		if r.verbose {
			log.Printf("cursor captured: %t", r.window.IsMouseCaptured())
		}
	}
}

// bindUniforms uploads one frame of camera uniforms to the scene shader
func (r *Renderer) bindUniforms(u camera.Uniforms) {
	s := r.triangle.Shader()
	s.Use()
	s.SetFloat(UniformFieldOfView, u.FieldOfView)
	s.SetVec3(UniformPosition, u.Position)
	s.SetVec3(UniformLookDirection, u.LookDirection)
	s.SetFloat(UniformAspectRatio, u.AspectRatio)
	s.SetFloat(UniformViewportHeight, u.ViewportHeight)
	s.SetInt(UniformFrameIndex, u.FrameIndex)
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.triangle != nil {
		r.triangle.Delete()
		r.triangle = nil
	}

	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}

	r.window.Close()
}
