package input

// Aggregator reduces a frame's queued motion and wheel events to a single
// Sample. It holds the two persistent read cursors into the source streams;
// cursors advance past everything consumed and are never reset, so each event
// influences at most one frame.
//
// One Aggregator serves one consumer. Create it once at setup and reuse it
// every frame; a fresh Aggregator would re-read whatever the streams still
// buffer.
type Aggregator struct {
	motion Reader[MotionEvent]
	wheel  Reader[WheelEvent]
}

// NewAggregator creates an Aggregator with both cursors at the start of their
// streams.
//
// Returns:
//   - *Aggregator: the new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Sample drains both streams since the previous call and reduces each to its
// last value. Earlier same-frame events are discarded rather than summed,
// which keeps a burst of queued motion from producing an unbounded spike.
// Empty streams yield zero deltas; that is the normal idle case, not an
// error.
//
// Parameters:
//   - src: the input source to drain
//
// Returns:
//   - Sample: the frame's look and zoom deltas
func (a *Aggregator) Sample(src *Source) Sample {
	var out Sample
	for _, ev := range a.motion.Read(&src.Motion) {
		out.Look = ev.Delta
	}
	for _, ev := range a.wheel.Read(&src.Wheel) {
		out.Zoom = ev.Delta
	}
	return out
}
