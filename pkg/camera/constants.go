package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera constants
const (
	// DefaultMoveSpeed is the distance travelled per frame while a movement key is held
	DefaultMoveSpeed = 0.05
	// DefaultSensitivity converts cursor pixels to radians
	DefaultSensitivity = 0.005

	// Field of view, in degrees
	DefaultFOV = 30.0
	MinFOV     = 10.0
	MaxFOV     = 170.0

	// Pitch limits, in radians
	MaxPitch = math32.Pi / 2
	MinPitch = -math32.Pi / 2

	twoPi = 2 * math32.Pi
)

// Default pose, looking from above and behind towards the scene origin
var (
	DefaultPosition = mgl32.Vec3{-2, 2, 1}
	DefaultTarget   = mgl32.Vec3{0, 0, -1}
)
