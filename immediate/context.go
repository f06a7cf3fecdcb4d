package immediate

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/trellis"
)

// window is the persistent state of one top-level window.
type window struct {
	x, y, w float64
	h       float64 // height measured at the last EndWindow
}

// region is an open window or child region. Items are stacked vertically
// starting at (x, cursorY).
type region struct {
	x, w    float64 // content origin and width
	top     float64 // outer top edge
	left    float64 // outer left edge
	outerW  float64
	cursorY float64
	maxX    float64
	fixedH  float64 // 0 = fit content
	bg      int     // index of the background command, patched on end
	border  bool
	win     *window
	flags   trellis.WindowFlags
}

// Context is an immediate-mode GUI drawn with Ebitengine. It implements
// trellis.Backend.
//
// A Context is not safe for concurrent use.
type Context struct {
	style      Style
	face       text.Face
	lineHeight float64

	// pointer and keyboard state of the current frame
	in                Input
	mouseX, mouseY    float64
	mouseDown         bool
	pressed, released bool
	deltaX, deltaY    float64
	dt                float32

	frame     uint64
	frameOpen bool
	active    uint64 // widget holding the pointer
	focus     uint64 // text input receiving keys
	ids       []trellis.ID
	regions   []*region

	windows            map[uint64]*window
	cascadeX, cascadeY float64

	cmds  []drawCmd // recording
	drawn []drawCmd // sealed by the last EndFrame

	buffers    map[trellis.BufferHandle]*textBuffer
	nextBuffer trellis.BufferHandle

	flashes    map[uint64]*gween.Tween
	flashLevel map[uint64]float32
	caret      *gween.Tween
	caretLevel float32

	injectQueue     []syntheticEvent
	runner          *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

var _ trellis.Backend = (*Context)(nil)

// NewContext creates a Context using the built-in 7x13 bitmap font.
func NewContext(style Style) *Context {
	face := text.NewGoXFace(basicfont.Face7x13)
	m := face.Metrics()
	c := &Context{
		style:         style,
		face:          face,
		lineHeight:    m.HAscent + m.HDescent,
		windows:       make(map[uint64]*window),
		buffers:       make(map[trellis.BufferHandle]*textBuffer),
		flashes:       make(map[uint64]*gween.Tween),
		flashLevel:    make(map[uint64]float32),
		cascadeX:      style.Cascade,
		cascadeY:      style.Cascade,
		ScreenshotDir: "screenshots",
	}
	c.restartCaret()
	return c
}

// Style returns the context's style.
func (c *Context) Style() Style {
	return c.style
}

// Frame returns the number of frames begun so far.
func (c *Context) Frame() uint64 {
	return c.frame
}

// BeginFrame starts recording a frame with the given input. dt is the
// time since the previous frame in seconds. An attached TestRunner steps
// first, and a queued synthetic event replaces in when one is pending.
func (c *Context) BeginFrame(in Input, dt float32) {
	if c.runner != nil {
		c.runner.step(c)
	}
	if ev, ok := c.popInjected(); ok {
		in = ev.input(c)
	}

	c.pressed = in.MouseDown && !c.mouseDown
	c.released = !in.MouseDown && c.mouseDown
	c.deltaX = in.MouseX - c.mouseX
	c.deltaY = in.MouseY - c.mouseY
	c.mouseX, c.mouseY, c.mouseDown = in.MouseX, in.MouseY, in.MouseDown
	c.in = in
	c.dt = dt

	c.cmds = c.cmds[:0]
	c.ids = c.ids[:0]
	c.regions = c.regions[:0]
	c.frameOpen = true
	c.frame++
	c.updateTweens(dt)
}

// EndFrame seals the commands recorded since BeginFrame so Draw can replay
// them. Calls after the first in the same frame do nothing.
func (c *Context) EndFrame() {
	if !c.frameOpen {
		return
	}
	if len(c.ids) != 0 {
		panic("immediate: unbalanced PushID/PopID at end of frame")
	}
	if len(c.regions) != 0 {
		panic("immediate: window or child region left open at end of frame")
	}
	if c.released {
		c.active = 0
	}
	c.drawn, c.cmds = c.cmds, c.drawn[:0]
	c.frameOpen = false
}

// ensureFrame opens a frame with unchanged input when a widget is declared
// without a BeginFrame.
func (c *Context) ensureFrame() {
	if c.frameOpen {
		return
	}
	c.BeginFrame(Input{MouseX: c.mouseX, MouseY: c.mouseY, MouseDown: c.mouseDown}, 0)
}

// PushID implements trellis.Backend.
func (c *Context) PushID(id trellis.ID) {
	c.ensureFrame()
	c.ids = append(c.ids, id)
}

// PopID implements trellis.Backend.
func (c *Context) PopID() {
	if len(c.ids) == 0 {
		panic("immediate: PopID without PushID")
	}
	c.ids = c.ids[:len(c.ids)-1]
}

// key derives a widget key from the current ID scope and title.
func (c *Context) key(title string) uint64 {
	h := fnv.New64a()
	var b [4]byte
	for _, id := range c.ids {
		binary.LittleEndian.PutUint32(b[:], uint32(id))
		_, _ = h.Write(b[:])
	}
	_, _ = h.Write([]byte(title))
	return h.Sum64()
}

// BeginWindow implements trellis.Backend. New windows cascade from the top
// left; a window's title bar can be dragged unless WindowNoMove is set.
func (c *Context) BeginWindow(title string, flags trellis.WindowFlags) {
	c.ensureFrame()
	key := c.key(title)
	w, ok := c.windows[key]
	if !ok {
		w = &window{x: c.cascadeX, y: c.cascadeY, w: c.style.WindowWidth}
		c.cascadeX += c.style.Cascade
		c.cascadeY += c.style.Cascade
		c.windows[key] = w
	}

	pad := c.style.Padding
	titleH := 0.0
	if flags&trellis.WindowNoTitleBar == 0 {
		titleH = c.lineHeight + 2*pad
	}
	if titleH > 0 && flags&trellis.WindowNoMove == 0 {
		if c.pressed && c.active == 0 && contains(w.x, w.y, w.w, titleH, c.mouseX, c.mouseY) {
			c.active = key
		} else if c.active == key && (c.mouseDown || c.released) {
			w.x += c.deltaX
			w.y += c.deltaY
		}
	}

	r := &region{
		x:       w.x + pad,
		w:       w.w - 2*pad,
		left:    w.x,
		top:     w.y,
		outerW:  w.w,
		cursorY: w.y + titleH + pad,
		border:  true,
		win:     w,
		flags:   flags,
	}
	r.maxX = r.x
	r.bg = c.fill(w.x, w.y, w.w, 0, c.style.WindowBg)
	if titleH > 0 {
		c.fill(w.x, w.y, w.w, titleH, c.style.TitleBg)
		c.text(w.x+pad, w.y+pad, title, c.style.Text)
	}
	c.regions = append(c.regions, r)
}

// EndWindow implements trellis.Backend.
func (c *Context) EndWindow() {
	r := c.popRegion()
	if r.win == nil {
		panic("immediate: EndWindow closes a child region")
	}
	h := r.cursorY - r.top + c.style.Padding - c.style.Spacing
	c.cmds[r.bg].h = h
	c.stroke(r.left, r.top, r.outerW, h, c.style.Border)
	r.win.h = h
	if r.flags&trellis.WindowAutoResize != 0 {
		r.win.w = r.maxX - r.win.x + c.style.Padding
	}
}

// BeginChild implements trellis.Backend. A zero width fills the enclosing
// region; a zero height fits the content.
func (c *Context) BeginChild(title string, size trellis.Size, border bool, flags trellis.WindowFlags) {
	parent := c.top("BeginChild")
	pad := c.style.Padding
	w := size.Width
	if w <= 0 {
		w = parent.w
	}
	r := &region{
		x:       parent.x + pad,
		w:       w - 2*pad,
		left:    parent.x,
		top:     parent.cursorY,
		outerW:  w,
		cursorY: parent.cursorY + pad,
		fixedH:  size.Height,
		border:  border,
		flags:   flags,
	}
	r.maxX = r.x
	r.bg = c.fill(r.left, r.top, w, 0, c.style.ChildBg)
	c.regions = append(c.regions, r)
}

// EndChild implements trellis.Backend.
func (c *Context) EndChild() {
	r := c.popRegion()
	if r.win != nil {
		panic("immediate: EndChild closes a window")
	}
	h := r.fixedH
	if h <= 0 {
		h = r.cursorY - r.top + c.style.Padding - c.style.Spacing
	}
	c.cmds[r.bg].h = h
	if r.border {
		c.stroke(r.left, r.top, r.outerW, h, c.style.Border)
	}
	c.top("EndChild").advance(r.left, r.outerW, h, c.style.Spacing)
}

func (c *Context) popRegion() *region {
	if len(c.regions) == 0 {
		panic("immediate: end of region without begin")
	}
	r := c.regions[len(c.regions)-1]
	c.regions = c.regions[:len(c.regions)-1]
	return r
}

// top returns the innermost open region. Panics if none is open.
func (c *Context) top(op string) *region {
	if len(c.regions) == 0 {
		panic("immediate: " + op + " outside a window")
	}
	return c.regions[len(c.regions)-1]
}

// advance moves the region's cursor past an item at x of size w by h.
func (r *region) advance(x, w, h, spacing float64) {
	r.cursorY += h + spacing
	if x+w > r.maxX {
		r.maxX = x + w
	}
}

// WindowRect returns the position and size of the top-level window with the
// given title declared in the scope of id, and whether such a window has
// been declared.
func (c *Context) WindowRect(id trellis.ID, title string) (x, y, w, h float64, ok bool) {
	saved := c.ids
	c.ids = []trellis.ID{id}
	key := c.key(title)
	c.ids = saved
	win, ok := c.windows[key]
	if !ok {
		return 0, 0, 0, 0, false
	}
	return win.x, win.y, win.w, win.h, true
}

func contains(x, y, w, h, px, py float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
