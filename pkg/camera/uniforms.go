package camera

import "github.com/go-gl/mathgl/mgl32"

// Viewport is the framebuffer size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive. A minimized window
// reports a zero-sized framebuffer.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// AspectRatio returns width / height, or 1 for an invalid viewport
func (v Viewport) AspectRatio() float32 {
	if !v.Valid() {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Uniforms is the per-frame input set of the scene shader.
type Uniforms struct {
	FieldOfView    float32
	Position       mgl32.Vec3
	LookDirection  mgl32.Vec3
	AspectRatio    float32
	ViewportHeight float32
	FrameIndex     int32
}

// ExportUniforms reads the current state together with the viewport metrics
// and frame index supplied by the caller. It does not mutate the controller.
func (c *Controller) ExportUniforms(viewport Viewport, frame int32) Uniforms {
	return Uniforms{
		FieldOfView:    c.state.FieldOfView,
		Position:       c.state.Position,
		LookDirection:  c.LookDirection(),
		AspectRatio:    viewport.AspectRatio(),
		ViewportHeight: float32(viewport.Height),
		FrameIndex:     frame,
	}
}
