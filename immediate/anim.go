package immediate

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash starts the highlight fade of a clicked button.
func (c *Context) flash(key uint64) {
	c.flashes[key] = gween.New(1, 0, c.style.FlashDuration, ease.OutQuad)
	c.flashLevel[key] = 1
}

// restartCaret makes the caret fully visible and restarts its fade.
func (c *Context) restartCaret() {
	c.caret = gween.New(1, 0, c.style.CaretBlink, ease.InOutSine)
	c.caretLevel = 1
}

// updateTweens advances button flashes and the caret by dt seconds.
// Finished flashes are dropped; the caret loops.
func (c *Context) updateTweens(dt float32) {
	for key, tw := range c.flashes {
		val, finished := tw.Update(dt)
		if finished {
			delete(c.flashes, key)
			delete(c.flashLevel, key)
			continue
		}
		c.flashLevel[key] = val
	}

	val, finished := c.caret.Update(dt)
	c.caretLevel = val
	if finished {
		c.restartCaret()
	}
}
