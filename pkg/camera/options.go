package camera

import "github.com/go-gl/mathgl/mgl32"

type config struct {
	position     mgl32.Vec3
	target       mgl32.Vec3
	lookAt       bool
	yaw, pitch   float32
	fov          float32
	moveSpeed    float32
	sensitivity  float32
	cursorLocked bool
}

// Option configures a Controller at construction time.
type Option func(*config)

// WithPosition sets the initial camera position.
func WithPosition(pos mgl32.Vec3) Option {
	return func(c *config) {
		c.position = pos
	}
}

// WithLookAt orients the camera towards target once the position is known,
// regardless of option order.
func WithLookAt(target mgl32.Vec3) Option {
	return func(c *config) {
		c.target = target
		c.lookAt = true
	}
}

// WithOrientation sets the initial yaw and pitch in radians. Values are
// wrapped and clamped like any other orientation update.
func WithOrientation(yaw, pitch float32) Option {
	return func(c *config) {
		c.yaw = yaw
		c.pitch = pitch
		c.lookAt = false
	}
}

// WithFieldOfView sets the initial vertical field of view in degrees.
func WithFieldOfView(fov float32) Option {
	return func(c *config) {
		c.fov = fov
	}
}

// WithMoveSpeed sets the distance moved per frame.
func WithMoveSpeed(speed float32) Option {
	return func(c *config) {
		c.moveSpeed = speed
	}
}

// WithSensitivity sets the cursor-to-radians factor.
func WithSensitivity(sensitivity float32) Option {
	return func(c *config) {
		c.sensitivity = sensitivity
	}
}

// WithCursorLocked starts the controller with the cursor driving the view.
func WithCursorLocked(locked bool) Option {
	return func(c *config) {
		c.cursorLocked = locked
	}
}
