package immediate

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// applyTo scales cs by the premultiplied color.
func (c Color) applyTo(cs *ebiten.ColorScale) {
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

// Style controls metrics, colors and timings of the widgets.
type Style struct {
	Padding     float64 // inner padding of windows, regions and controls
	Spacing     float64 // vertical gap between items
	WindowWidth float64 // initial width of top-level windows
	InputWidth  float64 // text input width when the view gives none
	InputLines  int     // visible lines of a multi-line input with no height
	Cascade     float64 // offset between the initial positions of new windows

	WindowBg       Color
	TitleBg        Color
	ChildBg        Color
	Border         Color
	Button         Color
	ButtonHovered  Color
	ButtonActive   Color
	Flash          Color
	Text           Color
	InputBg        Color
	InputFocusedBg Color
	Caret          Color

	CaretBlink    float32 // seconds for one caret fade
	FlashDuration float32 // seconds a clicked button stays highlighted
}

// DefaultStyle returns a dark style sized for the built-in 7x13 font.
func DefaultStyle() Style {
	return Style{
		Padding:     6,
		Spacing:     4,
		WindowWidth: 260,
		InputWidth:  180,
		InputLines:  4,
		Cascade:     28,

		WindowBg:       Color{0.11, 0.11, 0.14, 0.94},
		TitleBg:        Color{0.16, 0.29, 0.48, 1},
		ChildBg:        Color{0.14, 0.14, 0.18, 1},
		Border:         Color{0.43, 0.43, 0.5, 0.5},
		Button:         Color{0.26, 0.59, 0.98, 0.4},
		ButtonHovered:  Color{0.26, 0.59, 0.98, 1},
		ButtonActive:   Color{0.06, 0.53, 0.98, 1},
		Flash:          Color{1, 1, 1, 0.35},
		Text:           Color{1, 1, 1, 1},
		InputBg:        Color{0.16, 0.29, 0.48, 0.54},
		InputFocusedBg: Color{0.26, 0.59, 0.98, 0.4},
		Caret:          Color{1, 1, 1, 1},

		CaretBlink:    0.6,
		FlashDuration: 0.25,
	}
}
