// Package immediate is an immediate-mode GUI backend for trellis, drawn
// with [Ebitengine].
//
// A [Context] implements trellis.Backend. Each frame the caller snapshots
// input with [Context.BeginFrame], the view tree re-declares its widgets
// (which record draw commands and answer clicks and edits), and
// [Context.Draw] replays the recorded commands onto the screen. [Run] wires
// all of this into an ebiten.Game.
//
// The Context keeps only the state an immediate-mode GUI needs between
// frames: window positions, the widget holding the pointer, the focused
// text input, and the contents of text buffers handed out through
// AcquireTextBuffer.
//
// [Ebitengine]: https://ebitengine.org
package immediate
