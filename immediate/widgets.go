package immediate

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/trellis"
)

// textBuffer holds the contents behind one BufferHandle.
type textBuffer struct {
	runes []rune
	prev  string // contents at the end of the previous InputText
}

// Button implements trellis.Backend. The button is activated when the
// pointer is pressed and released over it.
func (c *Context) Button(title string, size trellis.Size) bool {
	r := c.top("Button")
	pad := c.style.Padding
	tw := c.measure(title)
	w, h := size.Width, size.Height
	if w <= 0 {
		w = tw + 2*pad
	}
	if h <= 0 {
		h = c.lineHeight + 2*pad
	}
	x, y := r.x, r.cursorY
	key := c.key(title)

	hovered := contains(x, y, w, h, c.mouseX, c.mouseY)
	if c.pressed && hovered && c.active == 0 {
		c.active = key
	}
	clicked := c.released && c.active == key && hovered
	if clicked {
		c.flash(key)
	}

	bg := c.style.Button
	switch {
	case c.active == key && c.mouseDown:
		bg = c.style.ButtonActive
	case hovered:
		bg = c.style.ButtonHovered
	}
	c.fill(x, y, w, h, bg)
	if level, ok := c.flashLevel[key]; ok && level > 0 {
		f := c.style.Flash
		f.A *= float64(level)
		c.fill(x, y, w, h, f)
	}
	c.text(x+(w-tw)/2, y+(h-c.lineHeight)/2, title, c.style.Text)

	r.advance(x, w, h, c.style.Spacing)
	return clicked
}

// Text implements trellis.Backend. Newlines start new lines.
func (c *Context) Text(s string) {
	r := c.top("Text")
	lines := strings.Count(s, "\n") + 1
	w := c.measure(s)
	c.text(r.x, r.cursorY, s, c.style.Text)
	r.advance(r.x, w, float64(lines)*c.lineHeight, c.style.Spacing)
}

// AcquireTextBuffer implements trellis.Backend.
func (c *Context) AcquireTextBuffer() trellis.BufferHandle {
	c.nextBuffer++
	c.buffers[c.nextBuffer] = &textBuffer{}
	return c.nextBuffer
}

// ReleaseTextBuffer implements trellis.Backend. Releasing an unknown
// handle is a no-op.
func (c *Context) ReleaseTextBuffer(h trellis.BufferHandle) {
	delete(c.buffers, h)
}

// ReadTextBuffer implements trellis.Backend.
func (c *Context) ReadTextBuffer(h trellis.BufferHandle) string {
	return string(c.buffer(h).runes)
}

// SetTextBuffer replaces the contents behind h. The change is reported by
// the next InputText bound to h.
func (c *Context) SetTextBuffer(h trellis.BufferHandle, s string) {
	c.buffer(h).runes = []rune(s)
}

func (c *Context) buffer(h trellis.BufferHandle) *textBuffer {
	buf, ok := c.buffers[h]
	if !ok {
		panic(fmt.Sprintf("immediate: unknown text buffer %d", h))
	}
	return buf
}

// InputText implements trellis.Backend. Clicking the box focuses it;
// clicking elsewhere, Escape, or Enter on a single-line input drops focus.
// It reports whether the contents differ from those at its previous call.
func (c *Context) InputText(title string, h trellis.BufferHandle, size trellis.Size, multiline bool) bool {
	r := c.top("InputText")
	buf := c.buffer(h)
	pad := c.style.Padding
	key := c.key(title)

	w := size.Width
	if w <= 0 {
		w = c.style.InputWidth
	}
	bh := c.lineHeight + 2*pad
	if multiline {
		bh = size.Height
		if bh <= 0 {
			bh = float64(c.style.InputLines)*c.lineHeight + 2*pad
		}
	}
	x, y := r.x, r.cursorY

	if c.pressed {
		if contains(x, y, w, bh, c.mouseX, c.mouseY) && c.active == 0 {
			if c.focus != key {
				c.restartCaret()
			}
			c.focus = key
		} else if c.focus == key {
			c.focus = 0
		}
	}
	focused := c.focus == key
	if focused {
		c.edit(buf, multiline)
	}

	contents := string(buf.runes)
	changed := contents != buf.prev
	buf.prev = contents

	bg := c.style.InputBg
	if focused {
		bg = c.style.InputFocusedBg
	}
	c.fill(x, y, w, bh, bg)
	c.stroke(x, y, w, bh, c.style.Border)
	c.text(x+pad, y+pad, contents, c.style.Text)
	if focused && c.caretLevel > 0 {
		last := contents[strings.LastIndexByte(contents, '\n')+1:]
		line := float64(strings.Count(contents, "\n"))
		caret := c.style.Caret
		caret.A *= float64(c.caretLevel)
		c.fill(x+pad+c.measure(last), y+pad+line*c.lineHeight, 1, c.lineHeight, caret)
	}

	lw := 0.0
	if title != "" {
		lw = c.style.Spacing + c.measure(title)
		c.text(x+w+c.style.Spacing, y+pad, title, c.style.Text)
	}

	r.advance(x, w+lw, bh, c.style.Spacing)
	return changed
}

// edit applies this frame's keyboard input to the focused buffer.
func (c *Context) edit(buf *textBuffer, multiline bool) {
	for _, ch := range c.in.Chars {
		if ch == '\n' || ch == '\r' {
			continue
		}
		buf.runes = append(buf.runes, ch)
	}
	if c.in.Backspace && len(buf.runes) > 0 {
		buf.runes = buf.runes[:len(buf.runes)-1]
	}
	if c.in.Enter {
		if multiline {
			buf.runes = append(buf.runes, '\n')
		} else {
			c.focus = 0
		}
	}
	if c.in.Escape {
		c.focus = 0
	}
}

// measure returns the width of the widest line of s.
func (c *Context) measure(s string) float64 {
	widest := 0.0
	for _, line := range strings.Split(s, "\n") {
		if w := text.Advance(line, c.face); w > widest {
			widest = w
		}
	}
	return widest
}

// Focused reports whether a text input is focused.
func (c *Context) Focused() bool {
	return c.focus != 0
}
