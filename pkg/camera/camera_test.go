package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], tol, "component %d of %v", i, actual)
	}
}

func assertInvariants(t *testing.T, c *Controller) {
	t.Helper()
	s := c.State()
	assert.InDelta(t, 1, c.LookDirection().Len(), tol)
	assert.GreaterOrEqual(t, s.Pitch, float32(MinPitch))
	assert.LessOrEqual(t, s.Pitch, float32(MaxPitch))
	assert.GreaterOrEqual(t, s.Yaw, float32(0))
	assert.Less(t, s.Yaw, float32(twoPi))
	assert.GreaterOrEqual(t, s.FieldOfView, float32(MinFOV))
	assert.LessOrEqual(t, s.FieldOfView, float32(MaxFOV))
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController()

	assert.Equal(t, DefaultPosition, c.Position())
	assert.Equal(t, float32(DefaultFOV), c.FieldOfView())
	assert.Equal(t, float32(DefaultMoveSpeed), c.MoveSpeed())
	assert.Equal(t, float32(DefaultSensitivity), c.Sensitivity())
	assert.False(t, c.CursorLocked())

	expected := DefaultTarget.Sub(DefaultPosition).Normalize()
	assertVec3(t, expected, c.LookDirection())
	assertInvariants(t, c)
}

func TestNewControllerOptions(t *testing.T) {
	c := NewController(
		WithOrientation(-math.Pi/2, 4),
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithFieldOfView(500),
		WithMoveSpeed(2),
		WithSensitivity(0.1),
		WithCursorLocked(true),
	)

	yaw, pitch := c.Orientation()
	assert.InDelta(t, 3*math.Pi/2, yaw, tol)
	assert.Equal(t, float32(MaxPitch), pitch)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
	assert.Equal(t, float32(MaxFOV), c.FieldOfView())
	assert.Equal(t, float32(2), c.MoveSpeed())
	assert.Equal(t, float32(0.1), c.Sensitivity())
	assert.True(t, c.CursorLocked())
	assertInvariants(t, c)
}

func TestWithLookAtIgnoresOptionOrder(t *testing.T) {
	c := NewController(
		WithLookAt(mgl32.Vec3{0, 0, 5}),
		WithPosition(mgl32.Vec3{0, 0, 0}),
	)

	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.LookDirection())
}

func TestLookAtOwnPositionKeepsOrientation(t *testing.T) {
	c := NewController(WithPosition(mgl32.Vec3{}), WithOrientation(1, 0.5))
	c.LookAt(mgl32.Vec3{})

	yaw, pitch := c.Orientation()
	assert.InDelta(t, 1, yaw, tol)
	assert.InDelta(t, 0.5, pitch, tol)
}

func TestApplyZoomStaysInBounds(t *testing.T) {
	c := NewController()
	rng := rand.New(rand.NewSource(42))

	for j := 0; j < 1000; j++ {
		c.ApplyZoom(float32(rng.NormFloat64() * 100))
		fov := c.FieldOfView()
		require.GreaterOrEqual(t, fov, float32(MinFOV))
		require.LessOrEqual(t, fov, float32(MaxFOV))
	}
}

func TestScrollScenario(t *testing.T) {
	c := NewController(
		WithPosition(mgl32.Vec3{-2, 2, 1}),
		WithOrientation(0, 0),
		WithFieldOfView(30),
	)

	c.ApplyZoom(5)
	assert.Equal(t, float32(25), c.FieldOfView())

	c.ApplyZoom(-200)
	assert.Equal(t, float32(170), c.FieldOfView())

	c.ApplyZoom(1000)
	assert.Equal(t, float32(10), c.FieldOfView())
}

func TestApplyLookKeepsUnitLookAndBoundedPitch(t *testing.T) {
	c := NewController()

	for x := -5000.0; x <= 5000; x += 137.5 {
		for y := -5000.0; y <= 5000; y += 91.25 {
			c.ApplyLook(x, y)
			assertInvariants(t, c)
		}
	}
}

func TestApplyLookIsAbsolute(t *testing.T) {
	c := NewController()

	c.ApplyLook(120, -40)
	first := c.LookDirection()
	c.ApplyLook(900, 300)
	c.ApplyLook(120, -40)

	assertVec3(t, first, c.LookDirection())
}

func TestApplyLookYawWraps(t *testing.T) {
	tests := []struct {
		name    string
		cursorX float64
		yaw     float64
	}{
		{"one turn past", 2*math.Pi + 0.1, 0.1},
		{"negative", -0.5, 2*math.Pi - 0.5},
		{"several turns", 6*math.Pi + 1, 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(WithSensitivity(1))
			c.ApplyLook(tt.cursorX, 0)

			yaw, _ := c.Orientation()
			assert.InDelta(t, tt.yaw, yaw, 1e-4)
			assertInvariants(t, c)
		})
	}
}

func TestApplyLookPitchClamps(t *testing.T) {
	c := NewController(WithSensitivity(1))

	c.ApplyLook(0, -100)
	_, pitch := c.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.LookDirection())

	c.ApplyLook(0, 100)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MinPitch), pitch)
	assertVec3(t, mgl32.Vec3{0, -1, 0}, c.LookDirection())
}

func TestApplyLookQuarterTurn(t *testing.T) {
	c := NewController(WithSensitivity(1))
	c.ApplyLook(math.Pi/2, 0)

	yaw, pitch := c.Orientation()
	assert.InDelta(t, math.Pi/2, yaw, tol)
	assert.Equal(t, float32(0), pitch)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.LookDirection())
}

func TestApplyMovementZeroIsNoop(t *testing.T) {
	c := NewController()
	before := c.Position()

	c.ApplyMovement(MoveAxis{})

	assert.Equal(t, before, c.Position())
	for _, v := range c.Position() {
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestApplyMovementForward(t *testing.T) {
	for _, yaw := range []float32{0, 0.7, math.Pi / 2, 3, 5.5} {
		c := NewController(
			WithPosition(mgl32.Vec3{}),
			WithOrientation(yaw, 0.3),
			WithMoveSpeed(0.25),
		)

		c.ApplyMovement(MoveAxis{Forward: 1})

		expected := mgl32.Vec3{float32(math.Cos(float64(yaw))), 0, float32(math.Sin(float64(yaw)))}.Mul(0.25)
		assertVec3(t, expected, c.Position())
	}
}

func TestApplyMovementForwardLeftIsNormalized(t *testing.T) {
	c := NewController(
		WithPosition(mgl32.Vec3{}),
		WithOrientation(0, 0),
	)

	c.ApplyMovement(MoveAxis{Forward: 1, Strafe: -1})

	expected := mgl32.Vec3{1, 0, -1}.Mul(float32(DefaultMoveSpeed / math.Sqrt2))
	assertVec3(t, expected, c.Position())
	assert.InDelta(t, DefaultMoveSpeed, c.Position().Len(), tol)
}

func TestApplyMovementSpeedIndependentOfAxisCount(t *testing.T) {
	axes := []MoveAxis{
		{Forward: 1},
		{Strafe: 1},
		{Vertical: -1},
		{Forward: -1, Strafe: 1},
		{Forward: 1, Strafe: 1, Vertical: 1},
	}

	for _, axis := range axes {
		c := NewController(WithPosition(mgl32.Vec3{}), WithOrientation(1.2, -0.4))
		c.ApplyMovement(axis)
		assert.InDelta(t, DefaultMoveSpeed, c.Position().Len(), tol, "axis %+v", axis)
	}
}

func TestApplyMovementVerticalIgnoresPitch(t *testing.T) {
	c := NewController(WithPosition(mgl32.Vec3{}), WithOrientation(0, MaxPitch))

	c.ApplyMovement(MoveAxis{Vertical: 1})

	assertVec3(t, mgl32.Vec3{0, DefaultMoveSpeed, 0}, c.Position())
}

func TestToggleCursorLockLeavesStateAlone(t *testing.T) {
	c := NewController()
	before := c.State()

	assert.True(t, c.ToggleCursorLock())
	assert.True(t, c.CursorLocked())
	assert.False(t, c.ToggleCursorLock())
	assert.False(t, c.CursorLocked())

	assert.Equal(t, before, c.State())
}

func TestExportUniforms(t *testing.T) {
	c := NewController()
	before := c.State()

	u := c.ExportUniforms(Viewport{Width: 1600, Height: 800}, 7)

	assert.Equal(t, c.FieldOfView(), u.FieldOfView)
	assert.Equal(t, c.Position(), u.Position)
	assert.Equal(t, c.LookDirection(), u.LookDirection)
	assert.Equal(t, float32(2), u.AspectRatio)
	assert.Equal(t, float32(800), u.ViewportHeight)
	assert.Equal(t, int32(7), u.FrameIndex)
	assert.Equal(t, before, c.State())
}

func TestViewportAspectRatio(t *testing.T) {
	assert.Equal(t, float32(1), Viewport{Width: 800, Height: 800}.AspectRatio())
	assert.Equal(t, float32(1), Viewport{}.AspectRatio())
	assert.False(t, Viewport{Width: 10}.Valid())
	assert.True(t, Viewport{Width: 10, Height: 1}.Valid())
}
