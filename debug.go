package trellis

import (
	"fmt"
	"os"
)

// Limits above which debug mode warns about a suspicious tree shape.
const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// debugLog prints frame stats to stderr.
func (vp *Viewport) debugLog(stats FrameStats) {
	if !vp.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] frame %d | render: %v | drain: %v | total: %v\n",
		stats.Frame, stats.RenderTime, stats.DrainTime, stats.RenderTime+stats.DrainTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] panels: %d | views: %d | events: %d\n",
		stats.Panels, stats.Views, stats.Events)
}

// checkDestroyed panics when op is attempted on a destroyed panel. A
// destroyed panel must never reenter a tree, so this runs in every mode.
func checkDestroyed(p *Panel, op string) {
	if p.destroyed {
		panic(fmt.Sprintf("trellis: %s on destroyed panel %q (ID %d)", op, p.Title, p.id))
	}
}

// debugWarnShape reports on stderr when p sits unusually deep or holds an
// unusually long child list. Such trees still render; the warning points
// at a likely append loop.
func debugWarnShape(p *Panel) {
	depth := 0
	for q := p; q != nil; q = q.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: panel %q is nested %d deep (limit %d)\n",
			p.Title, depth, debugMaxTreeDepth)
	}
	if n := len(p.children); n > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: panel %q holds %d children (limit %d)\n",
			p.Title, n, debugMaxChildCount)
	}
}
