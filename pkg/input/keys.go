package input

// Key is a keyboard key code. Values match GLFW key codes, so a GLFW-backed
// KeyState can convert with glfw.Key(k).
type Key int

// Key codes used by the default bindings
const (
	KeySpace     Key = 32
	KeyA         Key = 65
	KeyC         Key = 67
	KeyD         Key = 68
	KeyS         Key = 83
	KeyW         Key = 87
	KeyEscape    Key = 256
	KeyLeftShift Key = 340
)

// KeyState answers whether a key is currently held down.
type KeyState interface {
	KeyDown(key Key) bool
}

// Bindings maps actions to keys.
type Bindings struct {
	Forward      Key
	Back         Key
	Right        Key
	Left         Key
	Up           Key
	Down         Key
	Quit         Key
	ToggleCursor Key
}

// DefaultBindings returns WASD movement, Space/Left Shift for up/down,
// Escape to quit and C to toggle the cursor lock.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:      KeyW,
		Back:         KeyS,
		Right:        KeyD,
		Left:         KeyA,
		Up:           KeySpace,
		Down:         KeyLeftShift,
		Quit:         KeyEscape,
		ToggleCursor: KeyC,
	}
}
