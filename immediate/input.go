package immediate

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one frame's input snapshot.
type Input struct {
	MouseX, MouseY float64
	MouseDown      bool // primary button held

	Chars     []rune // printable characters typed this frame
	Enter     bool
	Backspace bool
	Escape    bool
}

// Key repeat timing in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 4
)

// PollInput reads the current mouse and keyboard state from Ebitengine.
// Must be called from ebiten.Game.Update.
func PollInput() Input {
	x, y := ebiten.CursorPosition()
	return Input{
		MouseX:    float64(x),
		MouseY:    float64(y),
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Chars:     ebiten.AppendInputChars(nil),
		Enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Backspace: keyRepeating(ebiten.KeyBackspace),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// keyRepeating reports a press on the first tick and then at the repeat rate.
func keyRepeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
