package trellis

import "time"

// AdvanceFrame renders every top-level panel, then runs the callbacks
// queued by that render, then lets the backend finish the frame.
//
// Calling AdvanceFrame from inside a callback does not start a nested
// render or drain; only Backend.EndFrame runs for the inner call. If a
// callback panics the frame is abandoned, and a caller that recovers can
// keep calling AdvanceFrame.
func (vp *Viewport) AdvanceFrame() {
	if !vp.inFrame {
		vp.runFrame()
	}
	vp.backend.EndFrame()
}

func (vp *Viewport) runFrame() {
	vp.inFrame = true
	defer func() { vp.inFrame = false }()

	vp.frame++
	vp.stats = FrameStats{Frame: vp.frame}

	var t0 time.Time
	if vp.debug {
		t0 = time.Now()
	}

	vp.renderPass()

	if vp.debug {
		vp.stats.RenderTime = time.Since(t0)
		t0 = time.Now()
	}

	vp.drainEvents()

	if vp.debug {
		vp.stats.DrainTime = time.Since(t0)
		vp.debugLog(vp.stats)
	}

	vp.last = vp.stats
}

// InFrame reports whether an AdvanceFrame call is currently running.
func (vp *Viewport) InFrame() bool {
	return vp.inFrame
}
