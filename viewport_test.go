package trellis

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewViewportNilBackendPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil backend, got none")
		}
	}()
	NewViewport(nil)
}

// --- Render pass ---

func TestRenderTraversalOrder(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	a := vp.NewPanel("A", Size{})
	b := vp.NewPanel("B", Size{})
	vp.NewPanel("C", Size{})
	a.Append(NewText("a-text"))
	b.Append(NewButton("x", Size{}))
	b.Append(NewText("y"))

	vp.AdvanceFrame()

	want := []string{"window:A", "text:a-text", "window:B", "button:x", "text:y", "window:C"}
	if diff := cmp.Diff(want, rec.draws()); diff != "" {
		t.Errorf("traversal mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderScopesAndRegions(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	outer := vp.NewPanel("outer", Size{})
	inner := vp.NewPanel("inner", Size{Width: 80, Height: 40})
	btn := NewButton("ok", Size{})
	outer.Append(inner)
	inner.Append(btn)

	vp.AdvanceFrame()

	want := []string{
		fmt.Sprintf("push:%d", outer.ID()), "window:outer",
		fmt.Sprintf("push:%d", inner.ID()), "child:inner",
		fmt.Sprintf("push:%d", btn.ID()), "button:ok", "pop",
		"endchild", "pop",
		"endwindow", "pop",
		"endframe",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if rec.depth != 0 {
		t.Errorf("scope depth after frame = %d, want 0", rec.depth)
	}
	if rec.maxDepth != 3 {
		t.Errorf("max scope depth = %d, want 3", rec.maxDepth)
	}
}

func TestParentedPanelRenderedOnce(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	parent := vp.NewPanel("parent", Size{})
	child := vp.NewPanel("child", Size{})
	parent.Append(child)

	vp.AdvanceFrame()

	if n := rec.count("child:child") + rec.count("window:child"); n != 1 {
		t.Errorf("child rendered %d times, want 1", n)
	}
	if rec.count("window:child") != 0 {
		t.Error("parented panel must not be rendered as a window")
	}
}

func TestSingleOwnershipAfterMutations(t *testing.T) {
	vp := NewViewport(newRecorder())
	panels := make([]*Panel, 6)
	for i := range panels {
		panels[i] = vp.NewPanel(fmt.Sprintf("p%d", i), Size{})
	}
	panels[0].Append(panels[1])
	panels[1].Append(panels[2])
	panels[3].Append(panels[2])
	panels[0].Append(panels[4])
	panels[0].Remove(panels[4])
	panels[5].Append(panels[0])
	panels[3].Destroy()
	vp.AdvanceFrame()

	owners := make(map[ID]int)
	var walk func(p *Panel)
	walk = func(p *Panel) {
		owners[p.ID()]++
		for _, c := range p.Children() {
			if cp, ok := c.(*Panel); ok {
				walk(cp)
			}
		}
	}
	for _, p := range vp.Panels() {
		walk(p)
	}
	for _, p := range panels {
		n := owners[p.ID()]
		switch {
		case p.IsDestroyed() && n != 0:
			t.Errorf("destroyed panel %q reachable %d times", p.Title, n)
		case !p.IsDestroyed() && n != 1:
			t.Errorf("live panel %q reachable %d times, want 1", p.Title, n)
		}
	}
	if !panels[2].IsDestroyed() {
		t.Error("p2 was under p3 and should be destroyed with it")
	}
}

// --- Events ---

func TestButtonClickDeferred(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	p := vp.NewPanel("p", Size{})
	btn := NewButton("go", Size{})
	after := NewText("after")
	p.Append(btn)
	p.Append(after)

	var renderedBeforeCallback bool
	btn.OnClick = func() {
		renderedBeforeCallback = rec.count("text:after") == 1
	}
	rec.click("go")
	vp.AdvanceFrame()

	if !btn.DidClick() {
		t.Error("DidClick should be true after the clicked frame")
	}
	if !renderedBeforeCallback {
		t.Error("OnClick should run after the whole pass is rendered")
	}

	vp.AdvanceFrame()
	if btn.DidClick() {
		t.Error("DidClick should reset on the next frame")
	}
}

func TestClickWithoutCallback(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	p := vp.NewPanel("p", Size{})
	btn := NewButton("b", Size{})
	p.Append(btn)
	rec.click("b")

	vp.AdvanceFrame()

	if !btn.DidClick() {
		t.Error("DidClick should be true")
	}
	if vp.PendingEvents() != 0 {
		t.Error("nil OnClick should not enqueue anything")
	}
}

func TestCallbackDestroysOwnPanel(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	p := vp.NewPanel("doomed", Size{})
	vp.NewPanel("other", Size{})
	btn := NewButton("close", Size{})
	p.Append(btn)
	btn.OnClick = p.Destroy

	rec.click("close")
	vp.AdvanceFrame()

	if !p.IsDestroyed() {
		t.Fatal("panel should be destroyed by its button")
	}
	if rec.count("window:other") != 1 {
		t.Error("the pass that triggered the callback should be complete")
	}

	rec.reset()
	vp.AdvanceFrame()
	want := []string{"window:other"}
	if diff := cmp.Diff(want, rec.draws()); diff != "" {
		t.Errorf("next frame mismatch (-want +got):\n%s", diff)
	}
}

func TestCallbackCreatesPanel(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	p := vp.NewPanel("first", Size{})
	btn := NewButton("open", Size{})
	p.Append(btn)
	btn.OnClick = func() {
		second := vp.NewPanel("second", Size{})
		second.Append(NewText("hello"))
	}

	rec.click("open")
	vp.AdvanceFrame()
	if rec.count("window:second") != 0 {
		t.Error("panel created in a callback must not render in the same frame")
	}

	rec.reset()
	vp.AdvanceFrame()
	want := []string{"window:first", "button:open", "window:second", "text:hello"}
	if diff := cmp.Diff(want, rec.draws()); diff != "" {
		t.Errorf("next frame mismatch (-want +got):\n%s", diff)
	}
}

func TestEventsRunInDiscoveryOrder(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	a := vp.NewPanel("a", Size{})
	b := vp.NewPanel("b", Size{})
	b1 := NewButton("b1", Size{})
	a1 := NewButton("a1", Size{})
	a2 := NewButton("a2", Size{})
	a.Append(a1)
	a.Append(a2)
	b.Append(b1)

	var got []string
	for _, btn := range []*Button{a1, a2, b1} {
		btn.OnClick = func() { got = append(got, btn.Title) }
	}
	rec.click("b1")
	rec.click("a2")
	rec.click("a1")
	vp.AdvanceFrame()

	if diff := cmp.Diff([]string{"a1", "a2", "b1"}, got); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
	if vp.LastFrameStats().Events != 3 {
		t.Errorf("Events = %d, want 3", vp.LastFrameStats().Events)
	}
}

func TestDrainIsolation(t *testing.T) {
	vp := NewViewport(newRecorder())
	var log []string
	vp.Enqueue(func() {
		log = append(log, "first")
		vp.Enqueue(func() { log = append(log, "second") })
	})

	vp.AdvanceFrame()
	if diff := cmp.Diff([]string{"first"}, log); diff != "" {
		t.Errorf("after frame 1 (-want +got):\n%s", diff)
	}
	if vp.PendingEvents() != 1 {
		t.Errorf("PendingEvents = %d, want 1", vp.PendingEvents())
	}

	vp.AdvanceFrame()
	if diff := cmp.Diff([]string{"first", "second"}, log); diff != "" {
		t.Errorf("after frame 2 (-want +got):\n%s", diff)
	}
}

func TestPanickingCallbackDoesNotWedgeFrames(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	vp.NewPanel("p", Size{})

	var log []string
	vp.Enqueue(func() { log = append(log, "before") })
	vp.Enqueue(func() {
		vp.Enqueue(func() { log = append(log, "queued in drain") })
		panic("boom")
	})
	vp.Enqueue(func() { log = append(log, "after") })

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("recovered %v, want boom", r)
			}
		}()
		vp.AdvanceFrame()
	}()

	if vp.InFrame() {
		t.Fatal("InFrame should be false after a recovered panic")
	}
	if vp.PendingEvents() != 2 {
		t.Errorf("PendingEvents = %d, want 2", vp.PendingEvents())
	}

	rec.reset()
	vp.AdvanceFrame()
	if rec.count("window:p") != 1 {
		t.Error("render pass should run on the frame after the panic")
	}
	want := []string{"before", "after", "queued in drain"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("callback order (-want +got):\n%s", diff)
	}

	vp.Enqueue(func() {
		log = append(log, "outer")
		vp.Enqueue(func() { log = append(log, "inner") })
	})
	vp.AdvanceFrame()
	if diff := cmp.Diff(append(want, "outer"), log); diff != "" {
		t.Errorf("drain isolation after recovery (-want +got):\n%s", diff)
	}
}

func TestEnqueueNilIgnored(t *testing.T) {
	vp := NewViewport(newRecorder())
	vp.Enqueue(nil)
	if vp.PendingEvents() != 0 {
		t.Error("nil callback should not be queued")
	}
}

// --- Frame driver ---

func TestReentrantAdvanceFrame(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	p := vp.NewPanel("p", Size{})
	btn := NewButton("again", Size{})
	p.Append(btn)

	var inner int
	btn.OnClick = func() {
		if !vp.InFrame() {
			t.Error("InFrame should be true inside a drained callback")
		}
		vp.AdvanceFrame()
		inner++
	}
	rec.click("again")
	vp.AdvanceFrame()

	if inner != 1 {
		t.Fatalf("callback ran %d times, want 1", inner)
	}
	if n := rec.count("window:p"); n != 1 {
		t.Errorf("render pass ran %d times, want 1", n)
	}
	if rec.endFrames != 2 {
		t.Errorf("EndFrame called %d times, want 2 (outer and nested)", rec.endFrames)
	}
	if vp.InFrame() {
		t.Error("InFrame should be false after the frame")
	}
	if vp.LastFrameStats().Frame != 1 {
		t.Errorf("Frame = %d, want 1", vp.LastFrameStats().Frame)
	}
}

func TestFrameStats(t *testing.T) {
	vp := NewViewport(newRecorder())
	a := vp.NewPanel("a", Size{})
	vp.NewPanel("b", Size{})
	a.Append(NewText("t"))
	a.Append(NewButton("b", Size{}))

	vp.AdvanceFrame()
	vp.AdvanceFrame()

	stats := vp.LastFrameStats()
	if stats.Frame != 2 {
		t.Errorf("Frame = %d, want 2", stats.Frame)
	}
	if stats.Panels != 2 {
		t.Errorf("Panels = %d, want 2", stats.Panels)
	}
	if stats.Views != 4 {
		t.Errorf("Views = %d, want 4", stats.Views)
	}
}

func TestDestroyedPanelNeverRenders(t *testing.T) {
	rec := newRecorder()
	vp := NewViewport(rec)
	p := vp.NewPanel("gone", Size{})
	p.Destroy()
	p.Destroy()

	for i := 0; i < 3; i++ {
		vp.AdvanceFrame()
	}
	if rec.count("window:gone") != 0 {
		t.Error("destroyed panel should never render")
	}
}
