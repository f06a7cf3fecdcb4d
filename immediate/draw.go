package immediate

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawKind selects how a drawCmd is replayed.
type drawKind uint8

const (
	drawFill   drawKind = iota // solid rectangle
	drawStroke                 // 1px rectangle outline
	drawText                   // text at the top-left corner (x, y)
)

// drawCmd is one recorded drawing operation.
type drawCmd struct {
	kind       drawKind
	x, y, w, h float64
	color      Color
	text       string
}

// fill records a solid rectangle and returns its command index.
func (c *Context) fill(x, y, w, h float64, clr Color) int {
	c.cmds = append(c.cmds, drawCmd{kind: drawFill, x: x, y: y, w: w, h: h, color: clr})
	return len(c.cmds) - 1
}

func (c *Context) stroke(x, y, w, h float64, clr Color) {
	c.cmds = append(c.cmds, drawCmd{kind: drawStroke, x: x, y: y, w: w, h: h, color: clr})
}

func (c *Context) text(x, y float64, s string, clr Color) {
	if s == "" {
		return
	}
	c.cmds = append(c.cmds, drawCmd{kind: drawText, x: x, y: y, color: clr, text: s})
}

// whitePixel is a 1x1 white image scaled to draw solid rectangles.
// Created on first Draw so the package can be used without a graphics
// context (no sync.Once, immediate is single-threaded).
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Draw replays the commands sealed by the last EndFrame onto screen, then
// writes any queued screenshots.
func (c *Context) Draw(screen *ebiten.Image) {
	px := ensureWhitePixel()
	var op ebiten.DrawImageOptions
	for i := range c.drawn {
		cmd := &c.drawn[i]
		switch cmd.kind {
		case drawFill:
			drawRect(screen, px, &op, cmd.x, cmd.y, cmd.w, cmd.h, cmd.color)
		case drawStroke:
			drawRect(screen, px, &op, cmd.x, cmd.y, cmd.w, 1, cmd.color)
			drawRect(screen, px, &op, cmd.x, cmd.y+cmd.h-1, cmd.w, 1, cmd.color)
			drawRect(screen, px, &op, cmd.x, cmd.y+1, 1, cmd.h-2, cmd.color)
			drawRect(screen, px, &op, cmd.x+cmd.w-1, cmd.y+1, 1, cmd.h-2, cmd.color)
		case drawText:
			top := &text.DrawOptions{}
			top.GeoM.Translate(cmd.x, cmd.y)
			cmd.color.applyTo(&top.ColorScale)
			top.LineSpacing = c.lineHeight
			text.Draw(screen, cmd.text, c.face, top)
		}
	}
	c.flushScreenshots(screen)
}

func drawRect(dst, px *ebiten.Image, op *ebiten.DrawImageOptions, x, y, w, h float64, clr Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op.GeoM.Reset()
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Reset()
	clr.applyTo(&op.ColorScale)
	dst.DrawImage(px, op)
}

// DrawCount returns the number of commands the next Draw will replay.
func (c *Context) DrawCount() int {
	return len(c.drawn)
}
