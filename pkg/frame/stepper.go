// Package frame runs one frame of the fly-camera: drain input, update the
// camera, export uniforms. It has no GPU or window dependency.
package frame

import (
	"github.com/leterax/manta/pkg/camera"
	"github.com/leterax/manta/pkg/input"
)

// Result is everything the renderer needs after one step
type Result struct {
	Uniforms camera.Uniforms

	// Quit is set on every frame the quit key is held
	Quit bool

	// CursorLockChanged is set on the frame the lock was toggled; the window's
	// cursor mode must follow CursorLocked
	CursorLockChanged bool
	CursorLocked      bool

	// Resized is set when the viewport changed during this step
	Resized  bool
	Viewport camera.Viewport
}

// Stepper drives a camera.Controller from an input.Sampler. It is used from
// the frame-loop thread only.
type Stepper struct {
	camera   *camera.Controller
	sampler  *input.Sampler
	viewport camera.Viewport
	frame    int32
}

// NewStepper creates a stepper for the given controller and initial viewport
func NewStepper(controller *camera.Controller, sampler *input.Sampler, viewport camera.Viewport) *Stepper {
	return &Stepper{
		camera:   controller,
		sampler:  sampler,
		viewport: viewport,
	}
}

// Camera returns the controlled camera
func (s *Stepper) Camera() *camera.Controller {
	return s.camera
}

// Viewport returns the current viewport
func (s *Stepper) Viewport() camera.Viewport {
	return s.viewport
}

// Frame returns the index the next step will export
func (s *Stepper) Frame() int32 {
	return s.frame
}

// Step samples input, applies queued events in arrival order, then the cursor
// toggle, then movement, and exports the uniforms for this frame.
func (s *Stepper) Step(keys input.KeyState, queue *input.Queue) Result {
	intent := s.sampler.Sample(keys, queue)

	var res Result
	for _, ev := range intent.Events {
		switch ev.Kind {
		case input.EventScroll:
			s.camera.ApplyZoom(float32(ev.Y))
		case input.EventCursor:
			if s.camera.CursorLocked() {
				s.camera.ApplyLook(ev.X, ev.Y)
			}
		case input.EventResize:
			vp := camera.Viewport{Width: ev.Width, Height: ev.Height}
			if vp.Valid() && vp != s.viewport {
				s.viewport = vp
				res.Resized = true
			}
		}
	}

	if intent.ToggleCursor {
		s.camera.ToggleCursorLock()
		res.CursorLockChanged = true
	}

	s.camera.ApplyMovement(intent.Move)

	res.Quit = intent.Quit
	res.CursorLocked = s.camera.CursorLocked()
	res.Viewport = s.viewport
	res.Uniforms = s.camera.ExportUniforms(s.viewport, s.frame)
	s.frame++

	return res
}
