package immediate

// Control runes understood by InjectText. Each one ends the synthetic frame
// it appears in.
const (
	KeyEnter     = '\n'
	KeyBackspace = '\b'
	KeyEscape    = '\x1b'
)

// syntheticEvent stands in for the real Input of one frame. Pointer events
// move or press the pointer; key events leave it where it is and carry
// typed runes plus at most one control key.
type syntheticEvent struct {
	pointer bool
	x, y    float64
	down    bool

	chars []rune
	key   rune // 0, KeyEnter, KeyBackspace or KeyEscape
}

// input builds the Input the event stands for.
func (ev syntheticEvent) input(c *Context) Input {
	in := Input{MouseX: c.mouseX, MouseY: c.mouseY, MouseDown: c.mouseDown}
	if ev.pointer {
		in.MouseX, in.MouseY, in.MouseDown = ev.x, ev.y, ev.down
	}
	in.Chars = ev.chars
	in.Enter = ev.key == KeyEnter
	in.Backspace = ev.key == KeyBackspace
	in.Escape = ev.key == KeyEscape
	return in
}

func (c *Context) inject(ev syntheticEvent) {
	c.injectQueue = append(c.injectQueue, ev)
}

func (c *Context) injectPointer(x, y float64, down bool) {
	c.inject(syntheticEvent{pointer: true, x: x, y: y, down: down})
}

// InjectPress holds the pointer down at (x, y) for the next frame that has
// no earlier synthetic event pending.
func (c *Context) InjectPress(x, y float64) { c.injectPointer(x, y, true) }

// InjectMove moves the held pointer to (x, y).
func (c *Context) InjectMove(x, y float64) { c.injectPointer(x, y, true) }

// InjectRelease lets the pointer go at (x, y).
func (c *Context) InjectRelease(x, y float64) { c.injectPointer(x, y, false) }

// InjectClick presses and releases at (x, y) over two frames.
func (c *Context) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag presses at the start point, walks the pointer in a straight
// line and releases at the end point, spending frames frames in total
// (at least two).
func (c *Context) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	c.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		f := float64(i) / float64(frames-1)
		c.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	c.InjectRelease(toX, toY)
}

// InjectText types s into the focused input. Plain runes accumulate into
// one frame; a control rune (KeyEnter, KeyBackspace, KeyEscape) is pressed
// in the same frame and closes it. "ab\ncd" therefore takes two frames.
func (c *Context) InjectText(s string) {
	var chars []rune
	for _, r := range s {
		switch r {
		case KeyEnter, KeyBackspace, KeyEscape:
			c.inject(syntheticEvent{chars: chars, key: r})
			chars = nil
		default:
			chars = append(chars, r)
		}
	}
	if len(chars) > 0 {
		c.inject(syntheticEvent{chars: chars})
	}
}

// PendingInjections returns the number of synthetic frames still queued.
func (c *Context) PendingInjections() int {
	return len(c.injectQueue)
}

// popInjected dequeues the oldest synthetic event.
func (c *Context) popInjected() (syntheticEvent, bool) {
	if len(c.injectQueue) == 0 {
		return syntheticEvent{}, false
	}
	ev := c.injectQueue[0]
	c.injectQueue[0] = syntheticEvent{}
	c.injectQueue = c.injectQueue[1:]
	return ev, true
}
