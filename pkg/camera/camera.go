// Package camera implements the fly-camera state and the rules that map
// per-frame input onto it.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the persistent camera state. The look direction is not part of it;
// it is always derived from Yaw and Pitch.
type State struct {
	Position    mgl32.Vec3
	Yaw         float32 // radians, [0, 2π)
	Pitch       float32 // radians, [-π/2, π/2]
	FieldOfView float32 // degrees, [MinFOV, MaxFOV]
}

// MoveAxis holds the raw movement axes for one frame, each in {-1, 0, 1}.
type MoveAxis struct {
	Forward  float32
	Strafe   float32 // positive is right
	Vertical float32 // positive is up
}

// IsZero reports whether no movement was requested.
func (a MoveAxis) IsZero() bool {
	return a.Forward == 0 && a.Strafe == 0 && a.Vertical == 0
}

// Controller owns a camera State and is its only writer.
type Controller struct {
	state State

	// Camera options
	moveSpeed   float32
	sensitivity float32

	cursorLocked bool
}

// NewController creates a camera controller. Without options it reproduces the
// default pose: positioned at DefaultPosition, looking at DefaultTarget.
func NewController(options ...Option) *Controller {
	cfg := config{
		position:    DefaultPosition,
		target:      DefaultTarget,
		lookAt:      true,
		fov:         DefaultFOV,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
	}
	for _, option := range options {
		option(&cfg)
	}

	c := &Controller{
		moveSpeed:    cfg.moveSpeed,
		sensitivity:  cfg.sensitivity,
		cursorLocked: cfg.cursorLocked,
	}
	c.state.Position = cfg.position
	c.setFieldOfView(cfg.fov)

	if cfg.lookAt {
		c.LookAt(cfg.target)
	} else {
		c.setOrientation(cfg.yaw, cfg.pitch)
	}

	return c
}

// State returns a copy of the current camera state
func (c *Controller) State() State {
	return c.state
}

// Position returns the current camera position
func (c *Controller) Position() mgl32.Vec3 {
	return c.state.Position
}

// FieldOfView returns the vertical field of view in degrees
func (c *Controller) FieldOfView() float32 {
	return c.state.FieldOfView
}

// Orientation returns the current camera orientation (yaw, pitch) in radians
func (c *Controller) Orientation() (yaw, pitch float32) {
	return c.state.Yaw, c.state.Pitch
}

// MoveSpeed returns the distance moved per frame
func (c *Controller) MoveSpeed() float32 {
	return c.moveSpeed
}

// Sensitivity returns the cursor-to-radians factor
func (c *Controller) Sensitivity() float32 {
	return c.sensitivity
}

// LookDirection returns the unit view vector for the current yaw and pitch.
func (c *Controller) LookDirection() mgl32.Vec3 {
	return lookDirection(c.state.Yaw, c.state.Pitch)
}

func lookDirection(yaw, pitch float32) mgl32.Vec3 {
	cosPitch := math32.Cos(pitch)
	dir := mgl32.Vec3{
		math32.Cos(yaw) * cosPitch,
		math32.Sin(pitch),
		math32.Sin(yaw) * cosPitch,
	}
	return dir.Normalize()
}

// setOrientation is the single write path for yaw and pitch.
func (c *Controller) setOrientation(yaw, pitch float32) {
	c.state.Yaw = wrapAngle(yaw)
	c.state.Pitch = mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

func (c *Controller) setFieldOfView(fov float32) {
	c.state.FieldOfView = mgl32.Clamp(fov, MinFOV, MaxFOV)
}

// wrapAngle maps any angle into [0, 2π).
func wrapAngle(a float32) float32 {
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// a tiny negative input can round up to exactly 2π above
	if a >= twoPi {
		a = 0
	}
	return a
}

// LookAt orients the camera towards target. Looking at the camera's own
// position leaves the orientation unchanged.
func (c *Controller) LookAt(target mgl32.Vec3) {
	offset := target.Sub(c.state.Position)
	if offset.Len() == 0 {
		return
	}
	direction := offset.Normalize()

	yaw := math32.Atan2(direction.Z(), direction.X())
	pitch := math32.Asin(mgl32.Clamp(direction.Y(), -1, 1))
	c.setOrientation(yaw, pitch)
}

// SetPosition sets the camera position
func (c *Controller) SetPosition(pos mgl32.Vec3) {
	c.state.Position = pos
}

// ApplyMovement moves the camera by one frame of the given axes. The heading
// is rotated by yaw only, so pitch never tilts horizontal movement. Any
// combination of held axes moves exactly MoveSpeed.
func (c *Controller) ApplyMovement(axis MoveAxis) {
	yaw := c.state.Yaw
	longitudinal := mgl32.Vec3{math32.Cos(yaw), 0, math32.Sin(yaw)}.Mul(axis.Forward)
	lateral := mgl32.Vec3{math32.Cos(yaw + math32.Pi/2), 0, math32.Sin(yaw + math32.Pi/2)}.Mul(axis.Strafe)
	vertical := mgl32.Vec3{0, axis.Vertical, 0}

	move := longitudinal.Add(lateral).Add(vertical)
	if move.Len() == 0 {
		return
	}
	c.state.Position = c.state.Position.Add(move.Normalize().Mul(c.moveSpeed))
}

// ApplyLook sets yaw and pitch from an absolute cursor position. The mapping
// is absolute, not integrated: the same cursor position always yields the
// same orientation, so a cursor reset also resets the view.
func (c *Controller) ApplyLook(cursorX, cursorY float64) {
	yaw := float32(cursorX) * c.sensitivity
	pitch := float32(-cursorY) * c.sensitivity
	c.setOrientation(yaw, pitch)
}

// ApplyZoom narrows the field of view by delta degrees (one scroll tick is one
// degree), clamped to [MinFOV, MaxFOV].
func (c *Controller) ApplyZoom(delta float32) {
	c.setFieldOfView(c.state.FieldOfView - delta)
}

// ToggleCursorLock flips between locked (cursor drives the view) and free.
// It returns the new mode.
func (c *Controller) ToggleCursorLock() bool {
	c.cursorLocked = !c.cursorLocked
	return c.cursorLocked
}

// CursorLocked reports whether cursor motion is interpreted as look input
func (c *Controller) CursorLocked() bool {
	return c.cursorLocked
}
