// Package input turns raw keyboard state and window events into a per-frame
// Intent for the camera.
package input

import "github.com/leterax/manta/pkg/camera"

// Intent is the per-frame summary of input consumed by the camera update.
type Intent struct {
	Move camera.MoveAxis

	// Events are the scroll, cursor and resize events received since the
	// previous frame, in arrival order.
	Events []Event

	// Quit is level state: true on every frame the quit key is held
	Quit bool
	// ToggleCursor is an edge: true only on the frame the key went down
	ToggleCursor bool
}

// Sampler produces one Intent per frame. Its only memory is the previous
// state of the toggle key.
type Sampler struct {
	bindings      Bindings
	toggleWasDown bool
}

// NewSampler creates a sampler using the given key bindings
func NewSampler(bindings Bindings) *Sampler {
	return &Sampler{bindings: bindings}
}

// Bindings returns the sampler's key bindings
func (s *Sampler) Bindings() Bindings {
	return s.bindings
}

// Axis returns +1 if only positive is held, -1 if only negative is held and 0
// otherwise.
func Axis(keys KeyState, positive, negative Key) float32 {
	var v float32
	if keys.KeyDown(positive) {
		v++
	}
	if keys.KeyDown(negative) {
		v--
	}
	return v
}

// Sample reads the keyboard and drains the event queue. A nil queue yields no
// events.
func (s *Sampler) Sample(keys KeyState, queue *Queue) Intent {
	b := s.bindings

	toggleDown := keys.KeyDown(b.ToggleCursor)
	intent := Intent{
		Move: camera.MoveAxis{
			Forward:  Axis(keys, b.Forward, b.Back),
			Strafe:   Axis(keys, b.Right, b.Left),
			Vertical: Axis(keys, b.Up, b.Down),
		},
		Quit:         keys.KeyDown(b.Quit),
		ToggleCursor: toggleDown && !s.toggleWasDown,
	}
	s.toggleWasDown = toggleDown

	if queue != nil {
		intent.Events = queue.Drain()
	}
	return intent
}
