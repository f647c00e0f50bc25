package input

import "github.com/go-gl/mathgl/mgl32"

// MotionEvent is one pointer movement reported by the device layer, carrying
// the 2D delta in screen units since the previous report.
type MotionEvent struct {
	Delta mgl32.Vec2
}

// WheelEvent is one scroll wheel movement. Positive delta scrolls up.
type WheelEvent struct {
	Delta float32
}

// Sample is one frame's aggregated device input: the reduction of everything
// queued since the previous frame into two scalars the controller consumes.
type Sample struct {
	// Look is the last motion delta seen this frame, zero if none occurred.
	Look mgl32.Vec2

	// Zoom is the last wheel delta seen this frame, zero if none occurred.
	Zoom float32
}

// Source bundles the device input streams and live keyboard state that a
// window implementation (or a test) feeds and consumers sample from. The
// zero value is ready to use.
type Source struct {
	// Motion receives pointer movement deltas.
	Motion Events[MotionEvent]

	// Wheel receives scroll wheel deltas.
	Wheel Events[WheelEvent]

	// Keys holds live pressed state for virtual key codes.
	Keys Keyboard
}

// NewSource creates an empty input source.
//
// Returns:
//   - *Source: the new source
func NewSource() *Source {
	return &Source{}
}

// EndFrame discards this frame's buffered motion and wheel events. Hosts call
// it once per tick after all consumers have sampled; keyboard state is live
// and is not touched.
func (s *Source) EndFrame() {
	s.Motion.Flush()
	s.Wheel.Flush()
}
