package trellis

import "time"

// Viewport owns the top-level panels of one view tree and the queue of
// deferred callbacks. It drives a Backend once per AdvanceFrame.
//
// A Viewport is not safe for concurrent use. Tree mutation, rendering and
// callback dispatch all happen on the goroutine that calls AdvanceFrame.
type Viewport struct {
	backend Backend

	panels []*Panel      // top-level panels, registration order
	live   map[ID]*Panel // every undestroyed panel, resolves parent handles
	events []func()      // pending callbacks, enqueue order
	spare  []func()      // drained buffer reused by the next swap

	inFrame bool
	debug   bool
	frame   uint64
	stats   FrameStats
	last    FrameStats
}

// FrameStats describes one completed AdvanceFrame.
type FrameStats struct {
	Frame      uint64
	Panels     int           // top-level panels rendered
	Views      int           // views rendered, panels included
	Events     int           // callbacks drained
	RenderTime time.Duration // debug mode only
	DrainTime  time.Duration // debug mode only
}

// NewViewport creates an empty viewport rendering to b.
func NewViewport(b Backend) *Viewport {
	if b == nil {
		panic("trellis: nil backend")
	}
	return &Viewport{
		backend: b,
		live:    make(map[ID]*Panel),
	}
}

// Backend returns the backend the viewport renders to.
func (vp *Viewport) Backend() Backend {
	return vp.backend
}

// Panels returns the top-level panels in registration order. The returned
// slice MUST NOT be mutated by the caller.
func (vp *Viewport) Panels() []*Panel {
	return vp.panels
}

// Enqueue defers fn to the next event drain. A callback enqueued while a
// drain is running runs on the following frame, not the current one.
func (vp *Viewport) Enqueue(fn func()) {
	if fn == nil {
		return
	}
	vp.events = append(vp.events, fn)
}

// PendingEvents returns the number of callbacks waiting for the next drain.
func (vp *Viewport) PendingEvents() int {
	return len(vp.events)
}

// LastFrameStats returns statistics for the most recently completed frame.
func (vp *Viewport) LastFrameStats() FrameStats {
	return vp.last
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth
// and child count warnings are printed and per-frame stats are logged to
// stderr.
func (vp *Viewport) SetDebugMode(enabled bool) {
	vp.debug = enabled
}

func (vp *Viewport) registerTopLevel(p *Panel) {
	vp.panels = append(vp.panels, p)
}

// unregisterTopLevel removes p from the top-level list by ID. No-op if absent.
func (vp *Viewport) unregisterTopLevel(p *Panel) {
	for i, q := range vp.panels {
		if q.id == p.id {
			copy(vp.panels[i:], vp.panels[i+1:])
			vp.panels[len(vp.panels)-1] = nil
			vp.panels = vp.panels[:len(vp.panels)-1]
			return
		}
	}
}

// renderPass renders every top-level panel in registration order. Parented
// panels are reached only through their parent's children.
func (vp *Viewport) renderPass() {
	for _, p := range vp.panels {
		p.render(vp)
	}
	vp.stats.Panels = len(vp.panels)
}

// drainEvents swaps the pending queue for an empty one and runs the
// captured callbacks in enqueue order. Callbacks enqueued from inside the
// drain land in the fresh queue and wait for the next frame.
//
// If a callback panics, the callbacks after it are put back at the head of
// the queue and the drained buffer is not reused.
func (vp *Viewport) drainEvents() {
	events := vp.events
	vp.events, vp.spare = vp.spare[:0], nil

	ran := 0
	defer func() {
		if ran < len(events) {
			rest := append([]func(){}, events[ran+1:]...)
			vp.events = append(rest, vp.events...)
		}
	}()

	for i, fn := range events {
		events[i] = nil
		fn()
		ran++
	}
	vp.spare = events[:0]
	vp.stats.Events = ran
}
