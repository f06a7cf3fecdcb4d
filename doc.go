// Package trellis is a retained-mode view tree for immediate-mode renderers.
//
// Immediate-mode GUI backends keep no widget objects: every frame the caller
// re-declares every widget, in order, and reads back that frame's
// interaction results. Trellis lets applications instead build a persistent
// tree of panels, buttons, text and text inputs with ordinary Go lifetimes
// and mutable fields, and re-declares that tree to the backend once per
// [Viewport.AdvanceFrame].
//
// # Quick start
//
// Any [Backend] works; package immediate provides one built on Ebitengine
// together with a frame pump:
//
//	ctx := immediate.NewContext(immediate.DefaultStyle())
//	vp := trellis.NewViewport(ctx)
//
//	panel := vp.NewPanel("First Window", trellis.Size{})
//	button := trellis.NewButton("Click me", trellis.Size{})
//	label := trellis.NewText("Some Text")
//	panel.Append(button)
//	panel.Append(label)
//
//	button.OnClick = func() { label.Text = "clicked" }
//
//	immediate.Run(vp, ctx, immediate.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # View tree
//
// A [Panel] created with [Viewport.NewPanel] is a top-level window. Passing
// it to another panel's [Panel.Append] turns it into a child region and
// removes it from the top-level list, so every panel is rendered exactly
// once per frame. [Panel.Destroy] detaches a panel and disposes its subtree.
//
// Every view receives a process-unique [ID] at construction. Rendering pushes
// that ID as a backend scope around the view, so hover, focus and edit state
// stay attached to the same widget while the tree changes elsewhere.
//
// # Callbacks
//
// [Button.OnClick] and [TextInput.OnTextChange] never run during rendering.
// They are queued and run after the whole tree has been rendered, so a
// callback may freely create, destroy or reparent views. A callback queued
// while callbacks are running waits for the next frame.
//
// # Threading
//
// Trellis is single-threaded. Build, mutate and render the tree from the
// goroutine that calls AdvanceFrame.
package trellis
